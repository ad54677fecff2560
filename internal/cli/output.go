package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v2"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func (a *app) print(v interface{}) error {
	switch a.output {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	default:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = a.out.Write(data)
		return err
	}
}

func (a *app) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}
