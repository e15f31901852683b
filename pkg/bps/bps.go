// Package bps is the in-memory catalog of BPS Kota Medan statistics tables
// consulted by the assistant.
package bps

import (
	"StatMedan/internal/entity"
	"sort"
	"strings"
)

const (
	titleWeight       = 3
	keywordWeight     = 2
	categoryWeight    = 2
	descriptionWeight = 1
)

type ICatalog interface {
	SearchBPSData(query string) ([]entity.Dataset, error)
	DetectSpecificKeywords(query string) ([]entity.Dataset, error)
	GetCategories() ([]string, error)
	GetSuggestions(seed string) ([]string, error)
	Len() int
}

type indexedDataset struct {
	dataset     entity.Dataset
	title       string
	description string
	category    string
	keywords    []string
}

type catalog struct {
	datasets    []indexedDataset
	byID        map[string]int
	triggers    []trigger
	categories  []string
	suggestions []string
}

// New indexes datasets for search. Triggers pointing at datasets that are not
// in the catalog are ignored.
func New(datasets []entity.Dataset) ICatalog {
	c := &catalog{
		datasets:    make([]indexedDataset, 0, len(datasets)),
		byID:        make(map[string]int, len(datasets)),
		suggestions: staticSuggestions,
	}

	seenCategory := make(map[string]bool)
	for _, d := range datasets {
		keywords := make([]string, 0, len(d.Keywords))
		for _, k := range d.Keywords {
			keywords = append(keywords, foldText(k))
		}

		c.byID[d.ID] = len(c.datasets)
		c.datasets = append(c.datasets, indexedDataset{
			dataset:     d,
			title:       foldText(d.Title),
			description: foldText(d.Description),
			category:    foldText(d.Category),
			keywords:    keywords,
		})

		if d.Category != "" && !seenCategory[d.Category] {
			seenCategory[d.Category] = true
			c.categories = append(c.categories, d.Category)
		}
	}

	for _, t := range staticTriggers {
		ids := make([]string, 0, len(t.datasetIDs))
		for _, id := range t.datasetIDs {
			if _, ok := c.byID[id]; ok {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			c.triggers = append(c.triggers, trigger{phrase: t.phrase, datasetIDs: ids})
		}
	}

	return c
}

func (c *catalog) Len() int {
	return len(c.datasets)
}

// SearchBPSData scores every dataset by how many query tokens hit its title,
// keywords, category and description. Ties keep catalog order.
func (c *catalog) SearchBPSData(query string) ([]entity.Dataset, error) {
	tokens := searchTokens(query)
	if len(tokens) == 0 {
		return []entity.Dataset{}, nil
	}

	type scored struct {
		dataset entity.Dataset
		score   int
	}

	var hits []scored
	for _, d := range c.datasets {
		score := 0
		for _, token := range tokens {
			if strings.Contains(d.title, token) {
				score += titleWeight
			}
			if containsToken(d.keywords, token) {
				score += keywordWeight
			}
			if strings.Contains(d.category, token) {
				score += categoryWeight
			}
			if strings.Contains(d.description, token) {
				score += descriptionWeight
			}
		}
		if score > 0 {
			hits = append(hits, scored{dataset: d.dataset, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	results := make([]entity.Dataset, 0, len(hits))
	for _, h := range hits {
		results = append(results, h.dataset)
	}
	return results, nil
}

// DetectSpecificKeywords returns the datasets of every trigger phrase found in
// query, in trigger order and without repeats.
func (c *catalog) DetectSpecificKeywords(query string) ([]entity.Dataset, error) {
	folded := foldText(query)
	results := make([]entity.Dataset, 0)
	seen := make(map[string]bool)

	for _, t := range c.triggers {
		if !strings.Contains(folded, t.phrase) {
			continue
		}
		for _, id := range t.datasetIDs {
			d := c.datasets[c.byID[id]].dataset
			if seen[d.URL] {
				continue
			}
			seen[d.URL] = true
			results = append(results, d)
		}
	}

	return results, nil
}

func (c *catalog) GetCategories() ([]string, error) {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out, nil
}

// GetSuggestions returns the example questions containing seed, or all of them
// for an empty seed.
func (c *catalog) GetSuggestions(seed string) ([]string, error) {
	seed = strings.ToLower(strings.TrimSpace(seed))

	out := make([]string, 0, len(c.suggestions))
	for _, s := range c.suggestions {
		if seed == "" || strings.Contains(strings.ToLower(s), seed) {
			out = append(out, s)
		}
	}
	return out, nil
}

func containsToken(keywords []string, token string) bool {
	for _, k := range keywords {
		if strings.Contains(k, token) {
			return true
		}
	}
	return false
}
