package config

// The on-disk document predates the internal tier naming: its "patch" key
// holds the rule for the third component (Micro) and its "micro" key holds
// the rule for the fourth component (Patch). toRules and fromRules are the
// only places that know about this.

type ruleDocument struct {
	MaxDiff       *int `yaml:"maxDiff,omitempty"`
	RequireLatest bool `yaml:"requireLatest,omitempty"`
}

type rulesDocument struct {
	Major *ruleDocument `yaml:"major,omitempty"`
	Minor *ruleDocument `yaml:"minor,omitempty"`
	Patch *ruleDocument `yaml:"patch,omitempty"`
	Micro *ruleDocument `yaml:"micro,omitempty"`
}

type packageRuleDocument struct {
	Package       string         `yaml:"package"`
	Rules         *rulesDocument `yaml:"rules,omitempty"`
	SuppressUntil string         `yaml:"suppressUntil,omitempty"`
	Note          string         `yaml:"note,omitempty"`
	ProjectIssue  string         `yaml:"projectIssue,omitempty"`
}

type document struct {
	DefaultRules *rulesDocument        `yaml:"defaultRules,omitempty"`
	PackageRules []packageRuleDocument `yaml:"packageRules,omitempty"`
}

func toRule(d *ruleDocument) *Rule {
	if d == nil {
		return nil
	}
	r := NewRule()
	if d.MaxDiff != nil {
		r.MaxDiff = *d.MaxDiff
	}
	r.RequireLatest = d.RequireLatest
	return r
}

func fromRule(r *Rule) *ruleDocument {
	if r == nil {
		return nil
	}
	d := &ruleDocument{RequireLatest: r.RequireLatest}
	if r.MaxDiff != NoLimit {
		maxDiff := r.MaxDiff
		d.MaxDiff = &maxDiff
	}
	return d
}

func toRules(d *rulesDocument) *Rules {
	if d == nil {
		return nil
	}
	return &Rules{
		Major: toRule(d.Major),
		Minor: toRule(d.Minor),
		Micro: toRule(d.Patch),
		Patch: toRule(d.Micro),
	}
}

func fromRules(r *Rules) *rulesDocument {
	if r.IsEmpty() {
		return nil
	}
	return &rulesDocument{
		Major: fromRule(r.Major),
		Minor: fromRule(r.Minor),
		Patch: fromRule(r.Micro),
		Micro: fromRule(r.Patch),
	}
}

func (d *document) toConfiguration() *Configuration {
	cfg := &Configuration{DefaultRules: toRules(d.DefaultRules)}
	if len(d.PackageRules) > 0 {
		cfg.PackageRules = make([]PackageRule, 0, len(d.PackageRules))
	}
	for _, p := range d.PackageRules {
		note := p.Note
		if note == "" {
			note = p.ProjectIssue
		}
		cfg.PackageRules = append(cfg.PackageRules, PackageRule{
			Package:       p.Package,
			Rules:         toRules(p.Rules),
			SuppressUntil: p.SuppressUntil,
			Note:          note,
		})
	}
	return cfg
}

func fromConfiguration(cfg *Configuration) *document {
	d := &document{}
	if cfg == nil {
		return d
	}
	d.DefaultRules = fromRules(cfg.DefaultRules)
	for _, p := range cfg.PackageRules {
		d.PackageRules = append(d.PackageRules, packageRuleDocument{
			Package:       p.Package,
			Rules:         fromRules(p.Rules),
			SuppressUntil: p.SuppressUntil,
			Note:          p.Note,
		})
	}
	return d
}
