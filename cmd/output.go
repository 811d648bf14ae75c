/**************************************************************************************************
** Rendering of command results as coloured text, JSON or YAML.
**************************************************************************************************/

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/majorfi/clipkit/pkg/utils"
	"gopkg.in/yaml.v3"
)

type groupOutput struct {
	ClipKey string   `json:"clipKey" yaml:"clipKey"`
	Files   []string `json:"files" yaml:"files"`
}

type groupsOutput struct {
	Groups    []groupOutput `json:"groups" yaml:"groups"`
	Ungrouped []string      `json:"ungrouped" yaml:"ungrouped"`
}

type hashOutput struct {
	Path  string `json:"path" yaml:"path"`
	Hash  string `json:"hash" yaml:"hash"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

type numericOutput struct {
	Input   string `json:"input" yaml:"input"`
	Output  string `json:"output" yaml:"output"`
	Changed bool   `json:"changed" yaml:"changed"`
}

/**************************************************************************************************
** Encodes v in a structured format. Only called for "json" and "yaml".
**
** @param w - Destination writer
** @param format - Output format
** @param v - Value to encode
** @return error - Any encoding error
**************************************************************************************************/
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format '%s'", format)
	}
}

func writeList(w io.Writer, format string, paths []string) error {
	if format != "text" {
		return writeStructured(w, format, paths)
	}
	for _, path := range paths {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return err
		}
	}
	return nil
}

func writeGroups(w io.Writer, format string, groups []utils.TGoProGroup, rest []utils.TFileRef) error {
	out := groupsOutput{
		Groups:    make([]groupOutput, 0, len(groups)),
		Ungrouped: make([]string, 0, len(rest)),
	}
	for _, group := range groups {
		files := make([]string, 0, len(group.Files))
		for _, ref := range group.Files {
			files = append(files, ref.Path)
		}
		out.Groups = append(out.Groups, groupOutput{ClipKey: group.ClipKey, Files: files})
	}
	for _, ref := range rest {
		out.Ungrouped = append(out.Ungrouped, ref.Path)
	}

	if format != "text" {
		return writeStructured(w, format, out)
	}

	for _, group := range out.Groups {
		fmt.Fprintln(w, utils.ColorHeader(fmt.Sprintf("GoPro clip %s (%d files)", group.ClipKey, len(group.Files))))
		for _, file := range group.Files {
			fmt.Fprintf(w, "  %s\n", utils.ColorPath(file))
		}
	}
	if len(out.Ungrouped) > 0 {
		fmt.Fprintln(w, utils.ColorHeader(fmt.Sprintf("Other files (%d)", len(out.Ungrouped))))
		for _, file := range out.Ungrouped {
			fmt.Fprintf(w, "  %s\n", utils.ColorPath(file))
		}
	}
	return nil
}

func writeHashes(w io.Writer, format string, results []utils.THashResult) error {
	out := make([]hashOutput, 0, len(results))
	for _, result := range results {
		line := hashOutput{Path: result.Path, Hash: result.Hash}
		if result.Err != nil {
			line.Error = result.Err.Error()
		}
		out = append(out, line)
	}

	if format != "text" {
		return writeStructured(w, format, out)
	}

	for _, line := range out {
		hash := utils.ColorHash(line.Hash)
		if line.Hash == "" {
			hash = utils.ColorWarn(fmt.Sprintf("%-32s", "unavailable"))
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", hash, line.Path); err != nil {
			return err
		}
	}
	return nil
}

func writeNumeric(w io.Writer, format string, values []numericOutput) error {
	if format != "text" {
		return writeStructured(w, format, values)
	}
	for _, value := range values {
		if _, err := fmt.Fprintln(w, value.Output); err != nil {
			return err
		}
	}
	return nil
}
