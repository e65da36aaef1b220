package hiscores_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/hiscores"
	"github.com/osrsdps/dps-console/internal/testutils"
)

type HiscoresTestSuite struct {
	suite.Suite
}

func TestHiscoresSuite(t *testing.T) {
	suite.Run(t, new(HiscoresTestSuite))
}

func (s *HiscoresTestSuite) TestParse() {
	levels := hiscores.Parse(testutils.HiscoresBody)

	s.Len(levels, len(hiscores.Skills))
	s.Equal(2277, levels["Overall"])
	s.Equal(99, levels[entities.SkillAttack])
	s.Equal(90, levels[entities.SkillDefence])
	s.Equal(95, levels[entities.SkillStrength])
	s.Equal(97, levels[entities.SkillHitpoints])
	s.Equal(92, levels[entities.SkillRanged])
	s.Equal(77, levels[entities.SkillPrayer])
	s.Equal(94, levels[entities.SkillMagic])
	// unranked row
	s.Equal(-1, levels["Firemaking"])
	s.Equal(51, levels["Construction"])
}

func (s *HiscoresTestSuite) TestParseLevels() {
	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{"plain", "0,0,0\n1,99,13034431", 99},
		{"zero level", "0,0,0\n1,0,0", 1},
		{"unranked", "0,0,0\n-1,-1,-1", -1},
		{"unparsable level", "0,0,0\n1,abc,0", 1},
		{"leading blank line", "\n5,2277,1000\n1,99,13034431\n2,90,0", 99},
		{"surrounding whitespace", "  \n\n5,2277,1000\n1,99,13034431\n", 99},
		{"two fields", "0,0,0\n1,70", 70},
		{"crlf", "0,0,0\r\n5,42,1000\r\n", 42},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, hiscores.Parse(tc.body)[entities.SkillAttack])
		})
	}
}

func (s *HiscoresTestSuite) TestParseShortBody() {
	levels := hiscores.Parse("1,1500,100\n2,80,0")

	s.Equal(80, levels[entities.SkillAttack])
	_, ok := levels[entities.SkillMagic]
	s.False(ok)
}

func (s *HiscoresTestSuite) TestParseSkipsRowsWithoutLevel() {
	levels := hiscores.Parse("1,1500,100\nnot a row\n3,85,0")

	_, ok := levels[entities.SkillAttack]
	s.False(ok)
	s.Equal(85, levels[entities.SkillDefence])
}

func (s *HiscoresTestSuite) TestParseLeadingBlankLineKeepsRowOrder() {
	levels := hiscores.Parse("\n5,2277,1000\n1,99,13034431\n2,90,0")

	s.Equal(2277, levels["Overall"])
	s.Equal(99, levels[entities.SkillAttack])
	s.Equal(90, levels[entities.SkillDefence])
}

func (s *HiscoresTestSuite) TestCombatLevels() {
	combat := hiscores.CombatLevels(hiscores.Parse(testutils.HiscoresBody))

	s.Len(combat, len(entities.CombatSkills))
	s.NotContains(combat, "Overall")
	s.Equal(99, combat[entities.SkillAttack])
}
