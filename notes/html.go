package notes

import (
	"bytes"
	"html"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const HTMLFile = "structured_notes.html"

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

func mdToHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportHTML renders the Markdown file at mdPath into a standalone HTML page.
func ExportHTML(mdPath, htmlPath string) error {
	src, err := os.ReadFile(mdPath)
	if err != nil {
		return err
	}
	body, err := mdToHTML(src)
	if err != nil {
		return err
	}
	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	page.WriteString(html.EscapeString(documentTitle))
	page.WriteString("</title>\n</head>\n<body>\n")
	page.Write(body)
	page.WriteString("</body>\n</html>\n")
	return os.WriteFile(htmlPath, page.Bytes(), 0o644)
}
