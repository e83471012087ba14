package service

import (
	"slices"
	"strings"

	"jobadmin/internal/model"
)

// SkillPicker is the skill selector of the employee wizard: catalog skills picked by id plus
// free-text skills the catalog does not know.
type SkillPicker struct {
	Available []model.CatalogItem `json:"available"`
	Selected  []int64             `json:"selected"`
	Custom    []string            `json:"custom"`
}

func NewSkillPicker(available []model.CatalogItem) *SkillPicker {
	return &SkillPicker{Available: available, Selected: []int64{}, Custom: []string{}}
}

// Search returns catalog skills whose name contains query, ignoring case, that are not yet selected.
func (p *SkillPicker) Search(query string) []model.CatalogItem {
	q := strings.ToLower(query)
	out := []model.CatalogItem{}
	for _, s := range p.Available {
		if strings.Contains(strings.ToLower(s.Name), q) && !slices.Contains(p.Selected, s.ID) {
			out = append(out, s)
		}
	}
	return out
}

func (p *SkillPicker) Select(id int64) {
	if !slices.Contains(p.Selected, id) {
		p.Selected = append(p.Selected, id)
	}
}

// AddCustom adds a typed skill. A name matching a catalog skill selects that skill instead;
// blanks and case-insensitive duplicates are ignored.
func (p *SkillPicker) AddCustom(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, s := range p.Available {
		if strings.EqualFold(s.Name, name) {
			p.Select(s.ID)
			return
		}
	}
	for _, c := range p.Custom {
		if strings.EqualFold(c, name) {
			return
		}
	}
	p.Custom = append(p.Custom, name)
}

func (p *SkillPicker) Remove(id int64) {
	p.Selected = slices.DeleteFunc(p.Selected, func(v int64) bool { return v == id })
}

func (p *SkillPicker) RemoveCustom(name string) {
	p.Custom = slices.DeleteFunc(p.Custom, func(v string) bool { return v == name })
}

// SelectedSkills returns the catalog entries picked so far.
func (p *SkillPicker) SelectedSkills() []model.CatalogItem {
	out := []model.CatalogItem{}
	for _, s := range p.Available {
		if slices.Contains(p.Selected, s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// Values is the skills payload: selected ids followed by custom names.
func (p *SkillPicker) Values() []any {
	out := make([]any, 0, len(p.Selected)+len(p.Custom))
	for _, id := range p.Selected {
		out = append(out, id)
	}
	for _, c := range p.Custom {
		out = append(out, c)
	}
	return out
}
