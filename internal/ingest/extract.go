package ingest

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type kind string

const (
	kindText kind = "text"
	kindPDF  kind = "pdf"
	kindDocx kind = "docx"
	kindHTML kind = "html"
)

const (
	mimeText = "text/plain"
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
)

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	docxTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)

	noiseSelectors = strings.Join([]string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside", "form",
	}, ", ")
)

func kindByExtension(path string) (kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".markdown", "":
		return kindText, nil
	case ".pdf":
		return kindPDF, nil
	case ".docx":
		return kindDocx, nil
	case ".html", ".htm":
		return kindHTML, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func kindByMime(contentType string) (kind, error) {
	mime, _, _ := strings.Cut(contentType, ";")
	switch strings.TrimSpace(strings.ToLower(mime)) {
	case mimeText, "text/markdown", "":
		return kindText, nil
	case mimePDF:
		return kindPDF, nil
	case mimeDocx:
		return kindDocx, nil
	case mimeHTML, "application/xhtml+xml":
		return kindHTML, nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

func extract(k kind, data []byte) (string, error) {
	switch k {
	case kindText:
		return normalizeText(string(data)), nil
	case kindPDF:
		return extractPDFText(data)
	case kindDocx:
		return extractDocxText(data)
	case kindHTML:
		return htmlToText(string(data))
	default:
		return "", fmt.Errorf("unsupported document kind: %s", k)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return normalizeText(b.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return docxXMLToText(doc.Editable().GetContent()), nil
}

// docxXMLToText keeps paragraph breaks of a word/document.xml body and drops
// every other tag.
func docxXMLToText(content string) string {
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	return normalizeText(html.UnescapeString(content))
}

// htmlToText drops page chrome and converts the rest to markdown, which keeps
// list items on their own lines.
func htmlToText(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}

	doc.Find(noiseSelectors).Remove()

	content := doc.Find("main, article").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	body, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render html: %w", err)
	}

	md, err := htmltomarkdown.ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("failed to convert html: %w", err)
	}

	return normalizeText(md), nil
}

// normalizeText unifies line breaks, trims trailing blanks and collapses runs
// of empty lines.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t ")
		if strings.TrimSpace(line) == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
