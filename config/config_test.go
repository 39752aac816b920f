package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/5l1v3r1/plaso/config"
	"github.com/stretchr/testify/assert"
)

func TestFileLoader(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "config_test")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	definitions_dir := filepath.Join(tmpdir, "definitions")
	assert.NoError(t, os.Mkdir(definitions_dir, 0700))

	config_path := filepath.Join(tmpdir, "server.config.yaml")
	err = ioutil.WriteFile(config_path, []byte(`
definition_directories:
- `+definitions_dir+`
verbose: true
`), 0600)
	assert.NoError(t, err)

	config_obj, err := new(config.Loader).
		WithFileLoader(config_path).
		LoadAndValidate()
	assert.NoError(t, err)
	assert.True(t, config_obj.Verbose)
	assert.Equal(t, []string{definitions_dir},
		config_obj.DefinitionDirectories)
}

func TestFileLoaderRejectsUnknownFields(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "config_test")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	config_path := filepath.Join(tmpdir, "server.config.yaml")
	err = ioutil.WriteFile(config_path, []byte(`
no_such_option: true
`), 0600)
	assert.NoError(t, err)

	_, err = new(config.Loader).
		WithFileLoader(config_path).
		LoadAndValidate()
	assert.Error(t, err)
}

func TestDefaultLoaderWithDefinitionDirectory(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "config_test")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	config_obj, err := new(config.Loader).
		WithDefaultLoader().
		WithDefinitionDirectory(tmpdir).
		LoadAndValidate()
	assert.NoError(t, err)
	assert.Equal(t, []string{tmpdir}, config_obj.DefinitionDirectories)

	// A missing directory is a validation error.
	_, err = new(config.Loader).
		WithDefaultLoader().
		WithDefinitionDirectory(filepath.Join(tmpdir, "nonexistent")).
		LoadAndValidate()
	assert.Error(t, err)
}

func TestRequiredDefinitions(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "config_test")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	config_path := filepath.Join(tmpdir, "server.config.yaml")
	err = ioutil.WriteFile(config_path, []byte(`
disable_builtin_definitions: true
`), 0600)
	assert.NoError(t, err)

	_, err = new(config.Loader).
		WithFileLoader(config_path).
		WithRequiredDefinitions().
		LoadAndValidate()
	assert.Error(t, err)
}
