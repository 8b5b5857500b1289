package argfile

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/argv/internal/ctxlog"
)

// fileRoot decodes the top-level blocks of one argfile.
type fileRoot struct {
	Options []*optionBlock `hcl:"option,block"`
}

// optionBlock is the raw HCL shape of a single `option` block.
type optionBlock struct {
	Name        string    `hcl:"name,label"`
	Aliases     []string  `hcl:"aliases,optional"`
	Type        string    `hcl:"type,optional"`
	Default     cty.Value `hcl:"default,optional"`
	Required    bool      `hcl:"required,optional"`
	Description string    `hcl:"description,optional"`
}

// Load reads option declarations from a single argfile.
func Load(ctx context.Context, path string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading argfile.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("argfile: failed to parse %s: %w", path, diags)
	}

	spec := newSpec()
	if err := decodeInto(ctx, spec, file); err != nil {
		return nil, err
	}
	return spec, nil
}

// LoadDir reads option declarations from every `.hcl` file found under
// dir, recursively, merged in lexical path order so the result does not
// depend on directory walk details.
func LoadDir(ctx context.Context, dir string) (*Spec, error) {
	logger := ctxlog.FromContext(ctx)

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".hcl") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("argfile: failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	logger.Debug("Discovered argfiles.", "dir", dir, "count", len(paths))

	parser := hclparse.NewParser()
	spec := newSpec()
	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("argfile: failed to parse %s: %w", path, diags)
		}
		if err := decodeInto(ctx, spec, file); err != nil {
			return nil, err
		}
	}
	return spec, nil
}

// Decode reads option declarations from in-memory HCL source. filename is
// used for diagnostics only.
func Decode(ctx context.Context, filename string, src []byte) (*Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("argfile: failed to parse %s: %w", filename, diags)
	}

	spec := newSpec()
	if err := decodeInto(ctx, spec, file); err != nil {
		return nil, err
	}
	return spec, nil
}

// decodeInto translates one parsed file into Options and merges them into
// spec. Defaults are evaluated as literals: argfiles have no variables or
// functions in scope.
func decodeInto(ctx context.Context, spec *Spec, file *hcl.File) error {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("argfile: failed to decode: %w", diags)
	}

	for _, block := range root.Options {
		typ, err := typeForKeyword(block.Type)
		if err != nil {
			return err
		}
		opt := &Option{
			Name:        block.Name,
			Aliases:     block.Aliases,
			Type:        typ,
			Default:     block.Default,
			Required:    block.Required,
			Description: block.Description,
		}
		if err := checkDefault(opt); err != nil {
			return err
		}
		if err := spec.add(opt); err != nil {
			return err
		}
		logger.Debug("Declared option.",
			"name", opt.Name,
			"aliases", opt.Aliases,
			"type", opt.Type.FriendlyName(),
			"required", opt.Required,
		)
	}
	return nil
}
