package main

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/bearlytools/realtype/literal"
	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	formatLiteral = "literal"
	formatJSON    = "json"
	formatYAML    = "yaml"
)

// load reads the input text and decodes it into values.
func (a *app) load(ctx context.Context, stdin io.Reader, args []string) ([]any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	format := strings.ToLower(a.format)
	switch format {
	case formatLiteral, formatJSON, formatYAML:
	default:
		return nil, errors.Errorf("unknown format %q, want literal, json or yaml", a.format)
	}

	text, err := a.input(stdin, args)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []any{}, nil
	}

	switch format {
	case formatLiteral:
		values, err := literal.Parse(ctx, text)
		if err != nil {
			return nil, errors.Wrap(err, "parsing literals")
		}
		return values, nil
	case formatJSON:
		var doc any
		if err := json.Unmarshal([]byte(text), &doc); err != nil {
			return nil, errors.Wrap(err, "decoding JSON")
		}
		return asList(doc), nil
	case formatYAML:
		var doc any
		if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
		return asList(doc), nil
	}
	return nil, errors.Errorf("format %q has no decoder", format)
}

// input returns the raw text from --file or the arguments.
func (a *app) input(stdin io.Reader, args []string) (string, error) {
	if a.file == "" {
		return strings.Join(args, "\n"), nil
	}
	if len(args) > 0 {
		return "", errors.New("values can come from --file or the arguments, not both")
	}

	var (
		b   []byte
		err error
	)
	if a.file == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(a.file)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", a.file)
	}
	a.logger.Debug("Read input", zap.String("file", a.file), zap.Int("bytes", len(b)))
	return string(b), nil
}

// asList treats a top level array as the list of values and anything else as
// a single value.
func asList(doc any) []any {
	if l, ok := doc.([]any); ok {
		return l
	}
	return []any{doc}
}
