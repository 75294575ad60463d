package viceverser

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLexicon reads a full-form lexicon into a Lexicon.
// Format: "form<TAB>analysis", one analysis per line, e.g.
//
//	chevaux	st:cheval po:noun is:mas is:pl
//
// Empty lines and lines starting with "#" are skipped.
func LoadLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	lex := NewLexicon()
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		form, morph, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing tab separator", path, n)
		}
		lex.Add(strings.TrimSpace(form), morph)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	return lex, nil
}

// LoadFeatureLookup reads the flag → feature table.
// Format: "is:<tag><TAB><features>", where features follow sep, e.g.
//
//	is:ipre	Mood=Ind|Tense=Pres
//
// The "is:" prefix of the flag is optional.
func LoadFeatureLookup(path string, sep Separators) (FeatureLookup, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feature lookup: %w", err)
	}
	defer f.Close()

	lookup := make(FeatureLookup)
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		flag, feats, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("%s:%d: missing tab separator", path, n)
		}
		tag := strings.TrimPrefix(strings.TrimSpace(flag), "is:")
		d := make(map[string]string)
		for _, feat := range strings.Split(strings.TrimSpace(feats), sep.Feature) {
			name, value, ok := strings.Cut(feat, sep.Field)
			if !ok || name == "" || value == "" {
				return nil, fmt.Errorf("%s:%d: malformed feature %q", path, n, feat)
			}
			d[name] = value
		}
		lookup[tag] = d
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read feature lookup: %w", err)
	}
	return lookup, nil
}

// LoadExceptions reads irregular forms.
// Format: "pos<TAB>form<TAB>lemma", e.g.
//
//	verb	vais	aller
func LoadExceptions(path string) (Exceptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exceptions: %w", err)
	}
	defer f.Close()

	exc := make(Exceptions)
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s:%d: want 3 fields, got %d", path, n, len(parts))
		}
		pos, err := ParsePOS(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		if exc[pos] == nil {
			exc[pos] = make(map[string]string)
		}
		exc[pos][Normalize(parts[1])] = strings.TrimSpace(parts[2])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read exceptions: %w", err)
	}
	return exc, nil
}
