package mesh

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile loads a mesh from its native JSON form and validates it.
func ReadFile(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mesh: %w", err)
	}
	var m Mesh
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mesh %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mesh %s: %w", path, err)
	}
	return &m, nil
}

// WriteFile serializes the mesh to path, creating parent directories as
// needed.
func (m *Mesh) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write mesh: %w", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode mesh: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write mesh %s: %w", path, err)
	}
	return nil
}
