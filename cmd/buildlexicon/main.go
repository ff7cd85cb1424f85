// Command buildlexicon compiles a sorted, newline-delimited word list
// into the binary resources the keyboard loads at runtime: a minimal
// word graph (for membership/prefix queries) and a swipe-template store
// (for gesture decoding).
package main

import (
	"bufio"
	"flag"
	"io"
	"os"
	"sort"

	"github.com/golang/glog"

	"github.com/rutmehta/swipecore/graphbuilder"
	"github.com/rutmehta/swipecore/keylayout"
	"github.com/rutmehta/swipecore/template"
)

func main() {
	wordlistPath := flag.String("wordlist", "", "path to a newline-delimited word list (need not be pre-sorted)")
	lexiconOut := flag.String("lexicon-out", "lexicon.bin", "output path for the compiled word graph")
	templatesOut := flag.String("templates-out", "swipe.templates", "output path for the compiled template store")
	flag.Parse()

	if *wordlistPath == "" {
		glog.Fatal("buildlexicon: -wordlist is required")
	}

	words, err := readWordlist(*wordlistPath)
	if err != nil {
		glog.Fatalf("buildlexicon: reading %s: %v", *wordlistPath, err)
	}
	sort.Strings(words)

	graph, err := graphbuilder.Build(words)
	if err != nil {
		glog.Fatalf("buildlexicon: building word graph: %v", err)
	}
	if err := writeFile(*lexiconOut, graph.Save); err != nil {
		glog.Fatalf("buildlexicon: writing %s: %v", *lexiconOut, err)
	}

	allWords := graph.AllWords()
	templates := buildTemplates(allWords)
	store := template.NewStore(templates)
	if err := writeFile(*templatesOut, store.Save); err != nil {
		glog.Fatalf("buildlexicon: writing %s: %v", *templatesOut, err)
	}

	glog.Infof("compiled %d words, %d templates (%d skipped: unmappable or too short)",
		len(allWords), len(templates), len(allWords)-len(templates))
}

func readWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if w := scanner.Text(); w != "" {
			words = append(words, w)
		}
	}
	return words, scanner.Err()
}

// buildTemplates generates one template per word, by its position in
// allWords (its word id), skipping words that cannot be templated (a
// character with no key, or a key path that is a single repeated letter)
// rather than failing the whole build over one bad entry.
func buildTemplates(allWords []string) []template.Template {
	templates := make([]template.Template, 0, len(allWords))
	for id, w := range allWords {
		tpl, err := template.Generate(w, int32(id), keylayout.Default)
		if err != nil {
			glog.Warningf("buildlexicon: skipping %q: %v", w, err)
			continue
		}
		templates = append(templates, *tpl)
	}
	return templates
}

func writeFile(path string, save func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return save(f)
}
