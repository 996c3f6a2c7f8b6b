package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/beevik/etree"
)

const documentEntry = "word/document.xml"

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-zА-Яа-яЁё0-9_]+)\s*\}\}`)

// Template — открытый .docx с разобранным word/document.xml.
// Остальные части архива переносятся в результат без изменений.
type Template struct {
	entries []string
	raw     map[string][]byte
	doc     *etree.Document
}

// Open читает шаблон с диска.
func Open(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	return New(data)
}

// New разбирает шаблон из байтов .docx.
func New(data []byte) (*Template, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("template is not a docx archive: %w", err)
	}

	t := &Template{raw: make(map[string][]byte)}
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.Name, err)
		}
		t.entries = append(t.entries, file.Name)
		t.raw[file.Name] = content
	}

	body, ok := t.raw[documentEntry]
	if !ok {
		return nil, fmt.Errorf("missing %s in archive", documentEntry)
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parse %s: %w", documentEntry, err)
	}
	t.doc = doc
	return t, nil
}

// Placeholders возвращает отсортированный список имён плейсхолдеров,
// найденных в тексте документа. Используется для сверки с контекстом до
// рендеринга.
func (t *Template) Placeholders() []string {
	seen := make(map[string]struct{})
	for _, p := range t.doc.FindElements("//w:p") {
		for _, match := range placeholderRe.FindAllStringSubmatch(paragraphText(p), -1) {
			seen[match[1]] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render подставляет поля контекста, размножает строку таблицы оборудования
// по одной на каждую группу и удаляет полностью пустые строки таблиц.
// Плейсхолдеры, для которых значения нет, заменяются пустой строкой.
func (t *Template) Render(fields map[string]string, rows []map[string]string, rowKeys []string) {
	t.expandTableRows(rows, rowKeys)
	for _, p := range t.doc.FindElements("//w:p") {
		substituteParagraph(p, fields)
	}
	t.removeEmptyTableRows()
}

// SaveTo записывает результат в файл, перезаписывая существующий.
func (t *Template) SaveTo(path string) error {
	data, err := t.Bytes()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Bytes собирает итоговый .docx.
func (t *Template) Bytes() ([]byte, error) {
	body, err := t.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", documentEntry, err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range t.entries {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		content := t.raw[name]
		if name == documentEntry {
			content = body
		}
		if _, err := w.Write(content); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// expandTableRows находит в таблицах строку-прототип (строку, в которой
// встречается любой из rowKeys) и вставляет вместо неё по строке на каждый
// элемент rows.
func (t *Template) expandTableRows(rows []map[string]string, rowKeys []string) {
	for _, tbl := range t.doc.FindElements("//w:tbl") {
		proto := findPrototypeRow(tbl, rowKeys)
		if proto == nil {
			continue
		}
		idx := childIndex(tbl, proto)
		for i, rowFields := range rows {
			clone := proto.Copy()
			for _, p := range clone.FindElements(".//w:p") {
				substituteParagraph(p, rowFields)
			}
			tbl.InsertChildAt(idx+i, clone)
		}
		tbl.RemoveChild(proto)
	}
}

func findPrototypeRow(tbl *etree.Element, rowKeys []string) *etree.Element {
	for _, tr := range tbl.SelectElements("w:tr") {
		text := rowText(tr)
		for _, key := range rowKeys {
			if strings.Contains(text, key) && strings.Contains(text, "{{") {
				return tr
			}
		}
	}
	return nil
}

// removeEmptyTableRows удаляет строки таблиц, все ячейки которых содержат
// только пробельный текст. Так вычищаются запасные строки шаблона, не
// получившие данных.
func (t *Template) removeEmptyTableRows() {
	for _, tbl := range t.doc.FindElements("//w:tbl") {
		for _, tr := range tbl.SelectElements("w:tr") {
			if strings.TrimSpace(rowText(tr)) == "" {
				tbl.RemoveChild(tr)
			}
		}
	}
}

// substituteParagraph склеивает текст всех прогонов абзаца, выполняет замену
// и кладёт результат в первый текстовый узел. Word нередко рвёт плейсхолдер
// на несколько прогонов, поэтому замена по отдельным узлам ненадёжна.
func substituteParagraph(p *etree.Element, fields map[string]string) {
	texts := p.FindElements(".//w:t")
	if len(texts) == 0 {
		return
	}
	combined := paragraphText(p)
	if !strings.Contains(combined, "{{") {
		return
	}

	replaced := placeholderRe.ReplaceAllStringFunc(combined, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		return fields[name]
	})

	texts[0].SetText(replaced)
	texts[0].CreateAttr("xml:space", "preserve")
	for _, extra := range texts[1:] {
		extra.SetText("")
	}
}

func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, t := range p.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

func rowText(tr *etree.Element) string {
	var sb strings.Builder
	for _, t := range tr.FindElements(".//w:t") {
		sb.WriteString(t.Text())
	}
	return sb.String()
}

func childIndex(parent, el *etree.Element) int {
	for i, token := range parent.Child {
		if token == etree.Token(el) {
			return i
		}
	}
	return len(parent.Child)
}
