// Package docx заполняет шаблон договора в формате Word. Шаблон — обычный
// .docx с плейсхолдерами вида {{имя_поля}}; имена полей — внешний контракт
// с автором шаблона.
package docx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTemplateNotFound означает, что шаблон не найден ни по одному из
// кандидатных путей и не обнаружен поиском по рабочей директории.
// Это единственная фатальная ошибка генерации договора.
var ErrTemplateNotFound = errors.New("contract template not found")

// FindTemplate возвращает первый существующий путь из candidates.
// Если ни один не существует, ищет в dir файл *.docx, содержащий "template"
// в имени.
func FindTemplate(candidates []string, dir string) (string, error) {
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateNotFound, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".docx") {
			continue
		}
		if strings.Contains(strings.ToLower(name), "template") {
			return filepath.Join(dir, name), nil
		}
	}
	return "", ErrTemplateNotFound
}
