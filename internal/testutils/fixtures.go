package testutils

// Table fixtures shared by package tests. Shapes follow the community data
// dumps the console loads in production.
const (
	ItemTableJSON = `{
  "1215": {"name": "Dragon dagger", "equipment": {"slot": "weapon", "attack_stab": 40, "melee_strength": 40}},
  "4151": {"name": "Abyssal whip", "equipment": {"slot": "weapon", "attack_slash": 82, "melee_strength": 82}},
  "12954": {"name": "Dragon defender", "equipment": {"slot": "shield", "attack_stab": 25, "melee_strength": 6}},
  "20997": {"name": "Twisted bow", "equipment": {"slot": "2h", "attack_ranged": 70, "ranged_strength": 20}},
  "22325": {"name": "Scythe of vitur", "equipment": {"slot": "2h", "attack_slash": 125, "melee_strength": 75}},
  "11212": {"name": "Dragon arrow", "equipment": {"slot": "ammo", "ranged_strength": 60}},
  "11865": {"name": "Slayer helmet (i)", "equipment": {"slot": "head"}},
  "995": {"name": "Coins"}
}`

	MonsterTableJSON = `{
  "2": {"name": "Goblin", "hitpoints": 5, "combat_level": 2, "defence_level": 1},
  "415": {"name": "Abyssal demon", "hitpoints": 150, "combat_level": 124, "defence_level": 135},
  "8061": {"name": "Vorkath", "hitpoints": "750", "combat_level": 732, "defence_level": 214},
  "9999": {"name": "Training dummy", "hitpoints": 0}
}`

	BossTableJSON = `[
  {"name": "Vorkath", "hitpoints": 750, "combat_level": 732, "defence_level": 214},
  {"name": "Zulrah (Serpentine)", "hitpoints": 500, "combat_level": 725, "defence_level": 300},
  {"name": "Zulrah (Tanzanite)", "hitpoints": 500, "combat_level": 725, "defence_level": 300},
  {"name": "Phantom", "hitpoints": 0}
]`

	PriceTableJSON = `{
  "data": {
    "4151": {"high": 1500000, "low": 1450000},
    "12954": {"high": null, "low": 18000000},
    "20997": 1200000000,
    "11212": "2500"
  }
}`

	// HiscoresBody is a lite hiscores response: overall then 23 skills,
	// followed by activity rows the console ignores
	HiscoresBody = `1234,2277,4600000000
1,99,13034431
2,90,5346332
3,95,8771558
4,97,11805606
5,92,6517253
6,77,1475581
7,94,7944614
8,80,1986068
9,75,1210421
10,70,737627
11,81,2192818
12,-1,-1
13,60,273742
14,62,302288
15,55,166636
16,78,1629200
17,71,817498
18,66,496254
19,85,3258594
20,73,1000000
21,61,302288
22,80,1986068
23,51,111945
-1,-1
-1,-1`
)
