package config

import (
	"fmt"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
)

// Profile is a starting build applied when a session opens. Skills left
// out keep their default level.
type Profile struct {
	Username  string            `yaml:"username"`
	Stats     map[string]int    `yaml:"stats"`
	Buffs     entities.Buffs    `yaml:"buffs"`
	Equipment map[string]string `yaml:"equipment"`
	Target    *ProfileTarget    `yaml:"target"`
}

// ProfileTarget selects the starting target
type ProfileTarget struct {
	Name   string                `yaml:"name"`
	Source entities.TargetSource `yaml:"source"`
}

func (p *Profile) validate(vb *errors.ValidationBuilder) {
	for skill := range p.Stats {
		if !entities.IsCombatSkill(skill) {
			vb.InvalidField(fmt.Sprintf("Profile.Stats.%s", skill), "not a combat skill")
		}
	}
	for slot, id := range p.Equipment {
		errors.ValidateRequired(fmt.Sprintf("Profile.Equipment.%s", slot), id, vb)
	}
	if p.Target != nil {
		errors.ValidateRequired("Profile.Target.Name", p.Target.Name, vb)
		if p.Target.Source == "" {
			p.Target.Source = entities.SourceMonster
		}
		errors.ValidateEnum("Profile.Target.Source", string(p.Target.Source),
			[]string{string(entities.SourceMonster), string(entities.SourceBoss)}, vb)
	}
}
