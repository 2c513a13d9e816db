package gen

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"probe-generator/internal/capture"
	"probe-generator/internal/decl"
)

// FileSuffix is the extension of every generated file.
const FileSuffix = ".bpf.c"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Table classifies argument types. Nil means capture.DefaultTable.
	Table *capture.Table
	// Logger receives debug output about classification. Nil means no logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Table:  capture.DefaultTable(),
		Logger: zap.NewNop(),
	}
}

// Generator renders probe sources from declarations.
type Generator struct {
	emitter *capture.Emitter
	logger  *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		emitter: capture.NewEmitter(config.Table),
		logger:  logger,
	}
}

// GeneratedFile represents a generated probe source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "257-openat.bpf.c").
	Filename string
	// Content is the rendered source.
	Content []byte
	// Number and Lower identify the declaration the file was generated from.
	Number int
	Lower  string
}

// Filename returns the output filename for a syscall.
func Filename(number int, lower string) string {
	return fmt.Sprintf("%03d-%s%s", number, lower, FileSuffix)
}

// Generate renders one file per declaration, in declaration order.
func (g *Generator) Generate(decls []decl.Declaration) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(decls))

	for _, d := range decls {
		file, err := g.GenerateOne(d)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", d, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateOne renders the probe source for a single declaration.
func (g *Generator) GenerateOne(d decl.Declaration) (*GeneratedFile, error) {
	params := d.EnterParams()
	g.logUnclassified(d, params)

	data := probeData{
		Upper: d.Upper,
		Lower: d.Lower,
		Body:  strings.Join(g.emitter.Blocks(params), "\n"),
	}

	var buf bytes.Buffer
	if err := probeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return &GeneratedFile{
		Filename: Filename(d.Number, d.Lower),
		Content:  buf.Bytes(),
		Number:   d.Number,
		Lower:    d.Lower,
	}, nil
}

func (g *Generator) logUnclassified(d decl.Declaration, params []decl.Param) {
	table := g.emitter.Table()

	for i, p := range params {
		if _, ok := table.Lookup(p.Type); ok {
			continue
		}

		strategy, _ := capture.Classify(table, p.Type)
		g.logger.Debug("unclassified argument type",
			zap.String("syscall", d.Lower),
			zap.Int("index", i),
			zap.String("param", p.Name),
			zap.String("type", p.Type),
			zap.Stringer("strategy", strategy),
		)
	}
}
