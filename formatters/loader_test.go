package formatters_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/5l1v3r1/plaso/formatters"
	"github.com/stretchr/testify/assert"
)

const sampleCatalog = `
# Test formatters file.
---
type: 'basic'
data_type: 'test:basic'
message: 'Name: {name}'
short_message: '{name}'
short_source: 'TEST'
source: 'Test Source'
---
type: 'conditional'
data_type: 'test:conditional'
message:
- 'Name: {name}'
- 'Count: {count}'
short_message:
- '{name}'
short_source: 'TEST'
source: 'Test Source'
`

func TestLoadYamlMultiDocument(t *testing.T) {
	builder := formatters.NewCatalogBuilder()
	count, err := builder.LoadYaml(sampleCatalog)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	catalog := builder.Build()
	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"test:basic", "test:conditional"}, catalog.List())

	template, pres := catalog.Get("test:basic")
	assert.True(t, pres)
	assert.Equal(t, formatters.TYPE_BASIC, template.Type)
	assert.Equal(t, "Test Source", template.Source)
	assert.Equal(t, "TEST", template.ShortSource)

	// Definitions round trip.
	definition := template.Definition()
	assert.Equal(t, "test:basic", definition.DataType)
	assert.Equal(t, "Name: {name}", definition.Message.Single)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "unknown kind",
			err:  formatters.ErrUnknownType,
			data: `
type: 'fancy'
data_type: 'test:unknown'
message: '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "missing data_type",
			err:  formatters.ErrMissingDataType,
			data: `
type: 'basic'
message: '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "conditional with scalar message",
			err:  formatters.ErrEmptyMessageList,
			data: `
type: 'conditional'
data_type: 'test:scalar'
message: '{name}'
short_message:
- '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "conditional with empty message list",
			err:  formatters.ErrEmptyMessageList,
			data: `
type: 'conditional'
data_type: 'test:empty'
message: []
short_message:
- '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "conditional without short_message",
			err:  formatters.ErrEmptyMessageList,
			data: `
type: 'conditional'
data_type: 'test:noshort'
message:
- '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "basic with message list",
			err:  formatters.ErrMalformedTemplate,
			data: `
type: 'basic'
data_type: 'test:list'
message:
- '{name}'
short_source: 'TEST'
source: 'Test'
`,
		}, {
			name: "unterminated placeholder",
			err:  formatters.ErrMalformedTemplate,
			data: `
type: 'basic'
data_type: 'test:malformed'
message: 'Name: {name'
short_source: 'TEST'
source: 'Test'
`,
		},
	}

	for _, testcase := range cases {
		builder := formatters.NewCatalogBuilder()
		_, err := builder.LoadYaml(testcase.data)
		assert.Error(t, err, testcase.name)
		assert.ErrorIs(t, err, testcase.err, testcase.name)
	}
}

func TestLoadErrorsCarryDataType(t *testing.T) {
	builder := formatters.NewCatalogBuilder()
	_, err := builder.LoadYaml(`
type: 'basic'
data_type: 'test:malformed'
message: 'Name: {name'
short_source: 'TEST'
source: 'Test'
`)
	assert.Error(t, err)

	def_err, ok := err.(*formatters.DefinitionError)
	assert.True(t, ok)
	assert.Equal(t, "test:malformed", def_err.DataType)
}

func TestDuplicateDataType(t *testing.T) {
	builder := formatters.NewCatalogBuilder()
	_, err := builder.LoadYaml(sampleCatalog)
	assert.NoError(t, err)

	_, err = builder.LoadYaml(sampleCatalog)
	assert.ErrorIs(t, err, formatters.ErrDuplicateDataType)
}

func TestStrictDecoding(t *testing.T) {
	builder := formatters.NewCatalogBuilder()
	_, err := builder.LoadYaml(`
type: 'basic'
data_type: 'test:extra'
message: '{name}'
unexpected_field: 'nope'
short_source: 'TEST'
source: 'Test'
`)
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	tmpdir, err := ioutil.TempDir("", "formatters_test")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpdir)

	err = ioutil.WriteFile(filepath.Join(tmpdir, "good.yaml"),
		[]byte(sampleCatalog), 0600)
	assert.NoError(t, err)

	// A broken file is skipped, not fatal to the whole directory.
	err = ioutil.WriteFile(filepath.Join(tmpdir, "broken.yaml"),
		[]byte("type: 'nonsense'\ndata_type: 'x'\n"), 0600)
	assert.NoError(t, err)

	// Non definition files are ignored.
	err = ioutil.WriteFile(filepath.Join(tmpdir, "README.txt"),
		[]byte("not yaml"), 0600)
	assert.NoError(t, err)

	builder := formatters.NewCatalogBuilder()
	count, err := builder.LoadDirectory(nil, tmpdir)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	// Loading the same directory again is a no op.
	count, err = builder.LoadDirectory(nil, tmpdir)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.Equal(t, 2, builder.Build().Len())
}

func TestSeparatorDefaults(t *testing.T) {
	builder := formatters.NewCatalogBuilder()
	_, err := builder.LoadYaml(`
type: 'conditional'
data_type: 'test:defaultsep'
message:
- '{a}'
- '{b}'
short_message:
- '{a}'
short_source: 'TEST'
source: 'Test'
---
type: 'conditional'
data_type: 'test:emptysep'
message:
- '{a}'
- '{b}'
separator: ''
short_message:
- '{a}'
short_source: 'TEST'
source: 'Test'
`)
	assert.NoError(t, err)

	catalog := builder.Build()

	template, _ := catalog.Get("test:defaultsep")
	assert.Equal(t, " ", template.Separator)

	template, _ = catalog.Get("test:emptysep")
	assert.Equal(t, "", template.Separator)
}
