package formatters

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/5l1v3r1/plaso/config"
	"github.com/5l1v3r1/plaso/logging"
	"github.com/5l1v3r1/plaso/utils"
	"github.com/Velocidex/yaml/v2"
	errors "github.com/pkg/errors"
)

// CatalogBuilder accumulates template definitions from YAML streams
// and directories. Once every source is loaded, Build() produces the
// immutable catalog that renders are served from.
type CatalogBuilder struct {
	mu          sync.Mutex
	templates   map[string]*Template
	loaded_dirs []string
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		templates: make(map[string]*Template),
	}
}

// LoadYaml loads a multi document definition stream. Unknown fields
// are rejected so typos in catalogs are caught at load time. Returns
// the number of definitions loaded.
func (self *CatalogBuilder) LoadYaml(data string) (int, error) {
	decoder := yaml.NewDecoder(strings.NewReader(data))
	decoder.SetStrict(true)

	count := 0
	for {
		definition := &TemplateDefinition{}
		err := decoder.Decode(definition)
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, errors.WithStack(err)
		}

		// Comment only documents decode to nothing - skip them.
		if definition.Type == "" && definition.DataType == "" {
			continue
		}

		_, err = self.LoadDefinition(definition)
		if err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// LoadDefinition validates and compiles a single definition into the
// builder.
func (self *CatalogBuilder) LoadDefinition(definition *TemplateDefinition) (
	*Template, error) {
	template, err := compileDefinition(definition)
	if err != nil {
		return nil, err
	}

	self.mu.Lock()
	defer self.mu.Unlock()

	_, pres := self.templates[template.DataType]
	if pres {
		return nil, definitionError(template.DataType, ErrDuplicateDataType,
			"already defined")
	}

	self.templates[template.DataType] = template
	return template, nil
}

// LoadDirectory walks a directory tree loading each definition
// file. Broken files are logged and skipped so one bad catalog file
// does not take out the whole directory.
func (self *CatalogBuilder) LoadDirectory(
	config_obj *config.Config, dirname string) (int, error) {
	self.mu.Lock()
	if utils.InString(self.loaded_dirs, dirname) {
		self.mu.Unlock()
		return 0, nil
	}
	dirname = filepath.Clean(dirname)
	self.loaded_dirs = append(self.loaded_dirs, dirname)
	self.mu.Unlock()

	count := 0
	logger := logging.GetLogger(config_obj, &logging.CatalogComponent)
	err := filepath.Walk(dirname,
		func(file_path string, info os.FileInfo, err error) error {
			if err != nil {
				return errors.WithStack(err)
			}

			if !info.IsDir() && (strings.HasSuffix(info.Name(), ".yaml") ||
				strings.HasSuffix(info.Name(), ".yml")) {
				data, err := ioutil.ReadFile(file_path)
				if err != nil {
					logger.Error("Could not load %s: %s", info.Name(), err)
					return nil
				}
				loaded, err := self.LoadYaml(string(data))
				if err != nil {
					logger.Error("Could not load %s: %s", info.Name(), err)
					return nil
				}
				logger.Debug("Loaded %d definitions from %s", loaded, file_path)
				count += loaded
			}
			return nil
		})

	return count, err
}

// Build publishes the immutable catalog. The builder can keep
// loading afterwards without disturbing already published catalogs.
func (self *CatalogBuilder) Build() *Catalog {
	self.mu.Lock()
	defer self.mu.Unlock()

	templates := make(map[string]*Template, len(self.templates))
	for k, v := range self.templates {
		templates[k] = v
	}

	return &Catalog{
		templates:        templates,
		default_template: defaultTemplate(),
	}
}

func compileDefinition(definition *TemplateDefinition) (*Template, error) {
	if definition.DataType == "" {
		return nil, definitionError("", ErrMissingDataType,
			"every definition needs a data_type key")
	}

	data_type := definition.DataType

	switch definition.Type {
	case TYPE_BASIC:
		if definition.Message.IsList {
			return nil, definitionError(data_type, ErrMalformedTemplate,
				"basic templates take a single message string, not a list")
		}
		if definition.ShortMessage.IsList {
			return nil, definitionError(data_type, ErrMalformedTemplate,
				"basic templates take a single short_message string, not a list")
		}

	case TYPE_CONDITIONAL:
		if !definition.Message.IsList || len(definition.Message.Pieces) == 0 {
			return nil, definitionError(data_type, ErrEmptyMessageList,
				"conditional templates need a non empty message list")
		}
		if !definition.ShortMessage.IsList ||
			len(definition.ShortMessage.Pieces) == 0 {
			return nil, definitionError(data_type, ErrEmptyMessageList,
				"conditional templates need a non empty short_message list")
		}

	default:
		return nil, definitionError(data_type, ErrUnknownType,
			"%q is not a template type", definition.Type)
	}

	message, err := parseSpec(definition.Message)
	if err != nil {
		return nil, annotate(err, data_type)
	}

	short_message, err := parseSpec(definition.ShortMessage)
	if err != nil {
		return nil, annotate(err, data_type)
	}

	separator := DEFAULT_SEPARATOR
	if definition.Separator != nil {
		// An explicitly empty separator is meaningful: fragments
		// then abut directly and carry their own spacing.
		separator = *definition.Separator
	}

	return &Template{
		DataType:      data_type,
		Type:          definition.Type,
		Separator:     separator,
		ShortSource:   definition.ShortSource,
		Source:        definition.Source,
		message:       message,
		short_message: short_message,
		has_short:     !definition.ShortMessage.IsEmpty(),
		definition:    definition,
	}, nil
}

// Fragment parse errors do not know their data_type - fill it in.
func annotate(err error, data_type string) error {
	def_err, ok := err.(*DefinitionError)
	if ok && def_err.DataType == "" {
		def_err.DataType = data_type
	}
	return err
}
