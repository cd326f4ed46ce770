package entity

// MaxDocumentSize is the maximum allowed size for an outbound document (16 MB).
const MaxDocumentSize = 16 << 20
