// Package mimetype maps file extensions to MIME content types.
package mimetype

import (
	"path"
	"strings"
)

// Fallback is returned for any extension not in the table.
const Fallback = "application/octet-stream"

// types maps lowercase file extensions (with leading dot) to MIME strings.
var types = map[string]string{
	// documents
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":  "application/vnd.oasis.opendocument.text",
	".ods":  "application/vnd.oasis.opendocument.spreadsheet",
	".odp":  "application/vnd.oasis.opendocument.presentation",
	".rtf":  "application/rtf",
	".epub": "application/epub+zip",
	".azw":  "application/vnd.amazon.ebook",
	".abw":  "application/x-abiword",

	// text and web
	".txt":    "text/plain",
	".csv":    "text/csv",
	".html":   "text/html",
	".htm":    "text/html",
	".css":    "text/css",
	".js":     "text/javascript",
	".mjs":    "text/javascript",
	".json":   "application/json",
	".jsonld": "application/ld+json",
	".xml":    "application/xml",
	".xhtml":  "application/xhtml+xml",
	".md":     "text/markdown",
	".ics":    "text/calendar",
	".wasm":   "application/wasm",
	".sh":     "application/x-sh",
	".csh":    "application/x-csh",
	".php":    "application/x-httpd-php",

	// images
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".ico":  "image/vnd.microsoft.icon",
	".avif": "image/avif",
	".apng": "image/apng",
	".heic": "image/heic",
	".heif": "image/heif",

	// audio
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".oga":  "audio/ogg",
	".ogg":  "audio/ogg",
	".opus": "audio/opus",
	".aac":  "audio/aac",
	".flac": "audio/flac",
	".mid":  "audio/midi",
	".midi": "audio/midi",
	".weba": "audio/webm",
	".3gp":  "audio/3gpp",

	// video
	".mp4":  "video/mp4",
	".mpeg": "video/mpeg",
	".mpg":  "video/mpeg",
	".webm": "video/webm",
	".ogv":  "video/ogg",
	".avi":  "video/x-msvideo",
	".mov":  "video/quicktime",
	".wmv":  "video/x-ms-wmv",
	".mkv":  "video/x-matroska",
	".ts":   "video/mp2t",

	// fonts
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".eot":   "application/vnd.ms-fontobject",

	// archives
	".zip": "application/zip",
	".rar": "application/vnd.rar",
	".7z":  "application/x-7z-compressed",
	".tar": "application/x-tar",
	".gz":  "application/gzip",
	".bz":  "application/x-bzip",
	".bz2": "application/x-bzip2",
	".jar": "application/java-archive",

	// misc binary
	".bin":   "application/octet-stream",
	".exe":   "application/octet-stream",
	".swf":   "application/x-shockwave-flash",
	".mpkg":  "application/vnd.apple.installer+xml",
	".vsd":   "application/vnd.visio",
	".xul":   "application/vnd.mozilla.xul+xml",
	".ogx":   "application/ogg",
	".cda":   "application/x-cdf",
	".unity": "application/octet-stream",
	".data":  "application/octet-stream",
	".pck":   "application/octet-stream",
}

// Resolve returns the MIME type for a file extension. The extension is
// matched case-insensitively and may be given with or without the leading
// dot. Unknown extensions resolve to the generic binary fallback.
func Resolve(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return Fallback
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if mime, ok := types[ext]; ok {
		return mime
	}
	return Fallback
}

// ResolveFilename returns the MIME type for a filename based on its
// extension.
func ResolveFilename(name string) string {
	return Resolve(path.Ext(name))
}
