package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rcliao/lexcount/internal/model"
)

// yamlLexicon is the YAML document layout:
//
//	categories:
//	  - name: sad
//	    words: [unhappy, griev*]
type yamlLexicon struct {
	Categories []model.CategoryWords `yaml:"categories"`
}

// DecodeYAML reads a YAML lexicon. Names and words are normalized the same
// way Load normalizes dictionary lines.
func DecodeYAML(r io.Reader) ([]model.CategoryWords, error) {
	var doc yamlLexicon
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode yaml lexicon: %w", err)
	}

	var m merger
	for _, c := range doc.Categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		m.add(name, c.Words)
	}
	return m.out, nil
}

// EncodeYAML writes categories as a YAML lexicon.
func EncodeYAML(w io.Writer, cats []model.CategoryWords) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlLexicon{Categories: cats}); err != nil {
		return fmt.Errorf("encode yaml lexicon: %w", err)
	}
	return enc.Close()
}

// EncodeTSV writes categories in the dictionary line format Load reads.
func EncodeTSV(w io.Writer, cats []model.CategoryWords) error {
	bw := bufio.NewWriter(w)
	for _, c := range cats {
		bw.WriteString(c.Name)
		for _, word := range c.Words {
			bw.WriteByte('\t')
			bw.WriteString(word)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
