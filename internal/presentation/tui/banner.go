package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/muesli/termenv"
)

// PrintBanner outputs the tool banner. Colors follow the profile;
// termenv.Ascii prints plain text.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	s1 := p.String(" _ __  ___ _   _| |_(_) |").Foreground(p.Color("#818cf8"))
	s2 := p.String("| '_ \\/ __| | | | __| | |").Foreground(p.Color("#a78bfa"))
	s3 := p.String("| | | \\__ \\ |_| | |_| | |").Foreground(p.Color("#c084fc"))
	s4 := p.String("|_| |_|___/\\__,_|\\__|_|_|").Foreground(p.Color("#e879f9"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, s1)
	fmt.Fprintln(w, s2)
	fmt.Fprintln(w, s3)
	fmt.Fprintln(w, s4)
	fmt.Fprintf(w, "%s\n\n", p.String("namespace prefix utility "+version).Faint())
}

const rule = "#####################################"

// Listing renders the prefix table framed by rules, one "Prefix k: v" row per binding.
func Listing(table domain.Table, p termenv.Profile) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	if len(table) == 0 {
		b.WriteString(p.String("(no prefixes registered)").Faint().String() + "\n")
	}
	for _, prefix := range table.Prefixes() {
		name := p.String(prefix).Foreground(p.Color("#c084fc")).Bold()
		fmt.Fprintf(&b, "Prefix %s: %s\n", name, table[prefix])
	}
	b.WriteString(rule + "\n\n")
	return b.String()
}
