package constants

import "strings"

// Document formats handled by the pipeline.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// FileTypes holds the allowed values for the format field in extract_job.
var FileTypes = []string{PDF, IMAGE}

// MIME types accepted by the pipeline. PDF is cloud-only; the offline
// provider handles images exclusively.
const (
	MIMEPDF  = "application/pdf"
	MIMEJPEG = "image/jpeg"
	MIMEPNG  = "image/png"
	MIMEGIF  = "image/gif"
	MIMEBMP  = "image/bmp"
	MIMEWebP = "image/webp"
)

// ImageMIMETypes lists every image type both providers accept.
var ImageMIMETypes = []string{MIMEJPEG, MIMEPNG, MIMEGIF, MIMEBMP, MIMEWebP}

// AllowedExtensions holds the default allowed file extensions for ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"bmp":  {},
	"webp": {},
}

var extToMIME = map[string]string{
	"pdf":  MIMEPDF,
	"jpg":  MIMEJPEG,
	"jpeg": MIMEJPEG,
	"png":  MIMEPNG,
	"gif":  MIMEGIF,
	"bmp":  MIMEBMP,
	"webp": MIMEWebP,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMEForExt maps a file extension to its MIME type, or "" when unknown.
func MIMEForExt(ext string) string {
	return extToMIME[NormalizeExt(ext)]
}

// MapExtToFormat maps a file extension to a document format, or "" when the
// extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "gif", "bmp", "webp":
		return IMAGE
	default:
		return ""
	}
}
