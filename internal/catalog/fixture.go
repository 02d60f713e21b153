package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"uniadmin-backend/internal/model"
)

// Fixture is the on-disk catalog format.
type Fixture struct {
	Universities []model.University `yaml:"universities"`
	Courses      []model.Course     `yaml:"courses"`
	Students     []model.Student    `yaml:"students"`
}

// LoadFixture reads a YAML catalog fixture and builds a repository from it.
func LoadFixture(path string) (Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fx Fixture
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode catalog fixture %s: %w", path, err)
	}

	repo, err := NewMemoryRepository(fx.Universities, fx.Courses, fx.Students)
	if err != nil {
		return nil, fmt.Errorf("catalog fixture %s: %w", path, err)
	}
	return repo, nil
}
