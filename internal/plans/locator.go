// Package plans находит файлы поэтажных планов БТИ для ППЭ.
package plans

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Locator ищет план по соглашению об именах: "<что угодно> - <номер ППЭ>.pdf".
type Locator struct {
	dir string
}

func NewLocator(dir string) *Locator {
	return &Locator{dir: dir}
}

// Find возвращает путь к плану ППЭ. Файлы с именами не по соглашению
// пропускаются молча.
func (l *Locator) Find(ppeNumber int) (string, bool) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return "", false
	}

	want := strconv.Itoa(ppeNumber)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			continue
		}
		parts := strings.Split(strings.TrimSuffix(name, filepath.Ext(name)), " - ")
		if len(parts) < 2 {
			continue
		}
		if strings.TrimSpace(parts[len(parts)-1]) == want {
			return filepath.Join(l.dir, name), true
		}
	}
	return "", false
}
