package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Run executes the fetch command. Lookup failures are returned unchanged and
// reported once by main.
func (c *FetchCmd) Run(deps *Dependencies) error {
	record, err := deps.WordService.WordOfTheDay(deps.Ctx)
	if err != nil {
		return err
	}

	if c.Format == "yaml" {
		enc := yaml.NewEncoder(deps.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
