package tables_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/tables"
	"github.com/osrsdps/dps-console/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *tables.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = tables.NewCatalog()
	s.Require().NoError(s.catalog.Load(tables.KindItems, []byte(testutils.ItemTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindMonsters, []byte(testutils.MonsterTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindBosses, []byte(testutils.BossTableJSON)))
	s.Require().NoError(s.catalog.Load(tables.KindPrices, []byte(testutils.PriceTableJSON)))
}

func (s *CatalogTestSuite) TestEmptyCatalog() {
	c := tables.NewCatalog()
	s.Equal(map[tables.Kind]int{
		tables.KindItems: 0, tables.KindMonsters: 0, tables.KindBosses: 0, tables.KindPrices: 0,
	}, c.Counts())
	s.JSONEq(`[]`, string(c.RawTable(tables.KindBosses)))
	s.JSONEq(`{"data":{}}`, string(c.RawTable(tables.KindPrices)))

	_, ok := c.Item("4151")
	s.False(ok)
}

func (s *CatalogTestSuite) TestItems() {
	whip, ok := s.catalog.Item("4151")
	s.Require().True(ok)
	s.Equal("Abyssal whip", whip.Name)
	s.Equal(entities.SlotWeapon, whip.Slot)
	s.Contains(string(whip.Record), `"attack_slash": 82`)

	coins, ok := s.catalog.Item("995")
	s.Require().True(ok)
	s.False(coins.Equipable())
}

func (s *CatalogTestSuite) TestLoadKeepsPreviousOnError() {
	err := s.catalog.Load(tables.KindItems, []byte(`[1,2,3]`))
	s.True(errors.IsInvalidArgument(err))

	_, ok := s.catalog.Item("4151")
	s.True(ok)

	s.Error(s.catalog.Load(tables.Kind("quests"), []byte(`{}`)))
}

func (s *CatalogTestSuite) TestPrices() {
	testCases := []struct {
		id       string
		expected int64
		found    bool
	}{
		{"4151", 1500000, true},
		{"12954", 18000000, true},
		{"20997", 1200000000, true},
		{"11212", 2500, true},
		{"1215", 0, false},
	}

	for _, tc := range testCases {
		s.Run(tc.id, func() {
			price, ok := s.catalog.Price(tc.id)
			s.Equal(tc.found, ok)
			s.Equal(tc.expected, price)
		})
	}
}

func (s *CatalogTestSuite) TestSearchItems() {
	testCases := []struct {
		name     string
		query    string
		slot     string
		expected []string
	}{
		{"short query", "d", "", nil},
		{"substring in id order", "dragon", "", []string{"Dragon dagger", "Dragon arrow", "Dragon defender"}},
		{"not equipable", "coins", "", nil},
		{"slot filter", "dragon", entities.SlotShield, []string{"Dragon defender"}},
		{"short query with slot", "o", entities.SlotWeapon, nil},
		{"weapon slot includes two-handed", "of", entities.SlotWeapon, []string{"Scythe of vitur"}},
		{"case insensitive", "TWISTED", "", []string{"Twisted bow"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var names []string
			for _, item := range s.catalog.SearchItems(tc.query, tc.slot) {
				names = append(names, item.Name)
			}
			s.Equal(tc.expected, names)
		})
	}
}

func (s *CatalogTestSuite) TestSearchMonsters() {
	results := s.catalog.SearchMonsters("vork")
	s.Require().Len(results, 2)
	s.Equal(entities.SourceMonster, results[0].Source)
	s.Equal(750, results[0].Hitpoints)
	s.Equal(entities.SourceBoss, results[1].Source)

	s.Empty(s.catalog.SearchMonsters("dummy"))
	s.Empty(s.catalog.SearchMonsters("phantom"))
	s.Nil(s.catalog.SearchMonsters("v"))
}

func (s *CatalogTestSuite) TestFindTarget() {
	boss, ok := s.catalog.FindTarget("Zulrah", entities.SourceBoss)
	s.Require().True(ok)
	s.Equal("Zulrah (Serpentine)", boss.Name)
	s.Equal(500, boss.Monster.Hitpoints)

	_, ok = s.catalog.FindTarget("Phantom", entities.SourceBoss)
	s.False(ok)

	monster, ok := s.catalog.FindTarget("Abyssal demon", entities.SourceMonster)
	s.Require().True(ok)
	s.Equal("415", monster.Monster.ID)

	_, ok = s.catalog.FindTarget("Abyssal", entities.SourceMonster)
	s.False(ok)

	s.JSONEq(testutils.BossTableJSON, string(s.catalog.SourceTable(entities.SourceBoss)))
	s.JSONEq(testutils.MonsterTableJSON, string(s.catalog.SourceTable(entities.SourceMonster)))
}
