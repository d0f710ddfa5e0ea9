package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// shaderFiles are the config file keys pointing at shader sources on disk.
// Relative paths are resolved against the config file directory.
type shaderFiles struct {
	VertexShaderFile   string `yaml:"vertex_shader_file"`
	FragmentShaderFile string `yaml:"fragment_shader_file"`
}

// LoadConfigFile reads the YAML document at path and applies it over cfg.
// Keys missing from the document leave cfg untouched.
func LoadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := ParseConfig(data, filepath.Dir(path), cfg); err != nil {
		return fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return nil
}

// ParseConfig applies the YAML document over cfg. Shader file paths are
// resolved against dir.
func ParseConfig(data []byte, dir string, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	var files shaderFiles
	if err := yaml.Unmarshal(data, &files); err != nil {
		return err
	}
	for _, elem := range []struct {
		path string
		dst  *string
	}{
		{files.VertexShaderFile, &cfg.VertexShader},
		{files.FragmentShaderFile, &cfg.FragmentShader},
	} {
		if elem.path == "" {
			continue
		}
		p := elem.path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		src, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read shader: %w", err)
		}
		*elem.dst = string(src)
	}
	return nil
}
