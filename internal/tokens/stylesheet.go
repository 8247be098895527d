package tokens

import (
	"fmt"
	"io"
	"strings"

	"github.com/solutivemind/themegen/internal/palette"
)

// Section groups declarations within a block.
type Section string

const (
	SectionBase    Section = "base"
	SectionRadius  Section = "radius"
	SectionChart   Section = "chart"
	SectionSidebar Section = "sidebar"
)

// Declaration is one custom property. Name excludes the leading "--".
type Declaration struct {
	Name    string  `json:"name"`
	Value   string  `json:"value"`
	Section Section `json:"section"`
}

// String formats the declaration as it appears in a block.
func (d Declaration) String() string {
	return fmt.Sprintf("--%s: %s;", d.Name, d.Value)
}

// Block is the set of declarations scoped to one selector.
type Block struct {
	Selector     string        `json:"selector"`
	Mode         palette.Mode  `json:"mode"`
	Declarations []Declaration `json:"declarations"`
}

// Stylesheet is the generated output for one palette.
type Stylesheet struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Blocks      []Block `json:"blocks"`
}

// Block returns the block for mode.
func (s *Stylesheet) Block(mode palette.Mode) (Block, bool) {
	for _, block := range s.Blocks {
		if block.Mode == mode {
			return block, true
		}
	}
	return Block{}, false
}

// Declarations returns the declarations emitted for mode.
func (s *Stylesheet) Declarations(mode palette.Mode) []Declaration {
	block, ok := s.Block(mode)
	if !ok {
		return nil
	}
	return block.Declarations
}

// Render writes the stylesheet as CSS.
func (s *Stylesheet) Render(w io.Writer) error {
	_, err := io.WriteString(w, s.String())
	return err
}

// String returns the stylesheet as CSS.
func (s *Stylesheet) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "/* Generated from palette: %s */\n", commentSafe(s.Name))
	if s.Description != "" {
		fmt.Fprintf(&b, "/* %s */\n", commentSafe(s.Description))
	}

	for _, block := range s.Blocks {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s {\n", block.Selector)
		for i, decl := range block.Declarations {
			if i > 0 && decl.Section != block.Declarations[i-1].Section {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  %s\n", decl)
		}
		b.WriteString("}\n")
	}

	return b.String()
}

func commentSafe(text string) string {
	return strings.ReplaceAll(text, "*/", "* /")
}
