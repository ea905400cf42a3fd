package markets

// The canonical market table. The reference platform's naming is the common
// vocabulary; every entry cross-references the identifiers and outcome
// descriptions the competitor feeds use for the same market. Source ids are
// left empty where a source does not offer the market.

func homeDrawAway() []OutcomeDefinition {
	return []OutcomeDefinition{
		{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
		{CanonicalID: "draw", ReferenceName: "X", SportyBetDesc: "Draw", Bet9jaSuffix: "X", Position: 2},
		{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
	}
}

func overUnder() []OutcomeDefinition {
	return []OutcomeDefinition{
		{CanonicalID: "over", ReferenceName: "Over", SportyBetDesc: "Over", Bet9jaSuffix: "O", Position: 1},
		{CanonicalID: "under", ReferenceName: "Under", SportyBetDesc: "Under", Bet9jaSuffix: "U", Position: 2},
	}
}

func yesNo() []OutcomeDefinition {
	return []OutcomeDefinition{
		{CanonicalID: "yes", ReferenceName: "Yes", SportyBetDesc: "Yes", Bet9jaSuffix: "Y", Position: 1},
		{CanonicalID: "no", ReferenceName: "No", SportyBetDesc: "No", Bet9jaSuffix: "N", Position: 2},
	}
}

func homeAway() []OutcomeDefinition {
	return []OutcomeDefinition{
		{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
		{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 2},
	}
}

func oddEven() []OutcomeDefinition {
	return []OutcomeDefinition{
		{CanonicalID: "odd", ReferenceName: "Odd", SportyBetDesc: "Odd", Bet9jaSuffix: "ODD", Position: 1},
		{CanonicalID: "even", ReferenceName: "Even", SportyBetDesc: "Even", Bet9jaSuffix: "EVEN", Position: 2},
	}
}

var canonicalMarkets = []MarketDefinition{
	// Match result family.
	{
		CanonicalID: "1x2", DisplayName: "1X2",
		ReferenceMarketID: "3743", SportyBetMarketID: "1", Bet9jaKey: "1X2",
		Outcomes: homeDrawAway(),
	},
	{
		CanonicalID: "double-chance", DisplayName: "Double Chance",
		ReferenceMarketID: "3744", SportyBetMarketID: "10", Bet9jaKey: "DC",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-or-draw", ReferenceName: "1X", SportyBetDesc: "Home or Draw", Bet9jaSuffix: "1X", Position: 1},
			{CanonicalID: "home-or-away", ReferenceName: "12", SportyBetDesc: "Home or Away", Bet9jaSuffix: "12", Position: 2},
			{CanonicalID: "draw-or-away", ReferenceName: "X2", SportyBetDesc: "Draw or Away", Bet9jaSuffix: "X2", Position: 3},
		},
	},
	{
		CanonicalID: "draw-no-bet", DisplayName: "Draw No Bet",
		ReferenceMarketID: "3745", SportyBetMarketID: "11", Bet9jaKey: "DNB",
		Outcomes: homeAway(),
	},
	{
		CanonicalID: "btts", DisplayName: "Both Teams To Score",
		ReferenceMarketID: "3795", SportyBetMarketID: "29", Bet9jaKey: "GGNG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "yes", ReferenceName: "Yes", SportyBetDesc: "Yes", Bet9jaSuffix: "GG", Position: 1},
			{CanonicalID: "no", ReferenceName: "No", SportyBetDesc: "No", Bet9jaSuffix: "NG", Position: 2},
		},
	},

	// Totals family (specifier markets: line completes the identity).
	{
		CanonicalID: "total-goals", DisplayName: "Total Goals Over/Under",
		ReferenceMarketID: "3962", SportyBetMarketID: "18", Bet9jaKey: "OU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "home-total-goals", DisplayName: "Home Team Total Goals",
		ReferenceMarketID: "3963", SportyBetMarketID: "19", Bet9jaKey: "HOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "away-total-goals", DisplayName: "Away Team Total Goals",
		ReferenceMarketID: "3964", SportyBetMarketID: "20", Bet9jaKey: "AOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "total-corners", DisplayName: "Total Corners Over/Under",
		ReferenceMarketID: "1096783", SportyBetMarketID: "166", Bet9jaKey: "CRNOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "total-cards", DisplayName: "Total Cards Over/Under",
		ReferenceMarketID: "1096790", SportyBetMarketID: "139", Bet9jaKey: "CRDOU",
		Outcomes: overUnder(), OverUnder: true,
	},

	// Handicaps.
	{
		CanonicalID: "asian-handicap", DisplayName: "Asian Handicap",
		ReferenceMarketID: "3877", SportyBetMarketID: "16", Bet9jaKey: "AH",
		Outcomes: homeAway(), Handicap: true,
	},
	{
		CanonicalID: "handicap-1x2", DisplayName: "Handicap 1X2",
		ReferenceMarketID: "3878", SportyBetMarketID: "14", Bet9jaKey: "H1X2",
		Outcomes: homeDrawAway(), Handicap: true,
	},
	{
		CanonicalID: "corner-handicap", DisplayName: "Corner Handicap",
		ReferenceMarketID: "1096784", SportyBetMarketID: "167", Bet9jaKey: "CRNAH",
		Outcomes: homeAway(), Handicap: true,
	},

	// Goal props.
	{
		CanonicalID: "odd-even", DisplayName: "Total Goals Odd/Even",
		ReferenceMarketID: "3801", SportyBetMarketID: "26", Bet9jaKey: "OE",
		Outcomes: oddEven(),
	},
	{
		CanonicalID: "first-team-to-score", DisplayName: "First Team To Score",
		ReferenceMarketID: "3806", SportyBetMarketID: "32", Bet9jaKey: "FTS",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "none", ReferenceName: "None", SportyBetDesc: "No Goal", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "home-clean-sheet", DisplayName: "Home Team Clean Sheet",
		ReferenceMarketID: "3810", SportyBetMarketID: "56", Bet9jaKey: "HCS",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-clean-sheet", DisplayName: "Away Team Clean Sheet",
		ReferenceMarketID: "3811", SportyBetMarketID: "57", Bet9jaKey: "ACS",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-win-to-nil", DisplayName: "Home Win To Nil",
		ReferenceMarketID: "3812", SportyBetMarketID: "58", Bet9jaKey: "HWTN",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-win-to-nil", DisplayName: "Away Win To Nil",
		ReferenceMarketID: "3813", SportyBetMarketID: "59", Bet9jaKey: "AWTN",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "penalty-awarded", DisplayName: "Penalty Awarded",
		ReferenceMarketID: "3820", SportyBetMarketID: "75", Bet9jaKey: "PEN",
		Outcomes: yesNo(),
	},

	// Variant markets: the specifier is a string selector, not a line.
	{
		CanonicalID: "correct-score", DisplayName: "Correct Score",
		ReferenceMarketID: "3829", SportyBetMarketID: "45", Bet9jaKey: "CS",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-0", ReferenceName: "1:0", SportyBetDesc: "1:0", Bet9jaSuffix: "10", Position: 1},
			{CanonicalID: "2-0", ReferenceName: "2:0", SportyBetDesc: "2:0", Bet9jaSuffix: "20", Position: 2},
			{CanonicalID: "2-1", ReferenceName: "2:1", SportyBetDesc: "2:1", Bet9jaSuffix: "21", Position: 3},
			{CanonicalID: "3-0", ReferenceName: "3:0", SportyBetDesc: "3:0", Bet9jaSuffix: "30", Position: 4},
			{CanonicalID: "3-1", ReferenceName: "3:1", SportyBetDesc: "3:1", Bet9jaSuffix: "31", Position: 5},
			{CanonicalID: "3-2", ReferenceName: "3:2", SportyBetDesc: "3:2", Bet9jaSuffix: "32", Position: 6},
			{CanonicalID: "0-0", ReferenceName: "0:0", SportyBetDesc: "0:0", Bet9jaSuffix: "00", Position: 7},
			{CanonicalID: "1-1", ReferenceName: "1:1", SportyBetDesc: "1:1", Bet9jaSuffix: "11", Position: 8},
			{CanonicalID: "2-2", ReferenceName: "2:2", SportyBetDesc: "2:2", Bet9jaSuffix: "22", Position: 9},
			{CanonicalID: "3-3", ReferenceName: "3:3", SportyBetDesc: "3:3", Bet9jaSuffix: "33", Position: 10},
			{CanonicalID: "0-1", ReferenceName: "0:1", SportyBetDesc: "0:1", Bet9jaSuffix: "01", Position: 11},
			{CanonicalID: "0-2", ReferenceName: "0:2", SportyBetDesc: "0:2", Bet9jaSuffix: "02", Position: 12},
			{CanonicalID: "1-2", ReferenceName: "1:2", SportyBetDesc: "1:2", Bet9jaSuffix: "12", Position: 13},
			{CanonicalID: "0-3", ReferenceName: "0:3", SportyBetDesc: "0:3", Bet9jaSuffix: "03", Position: 14},
			{CanonicalID: "1-3", ReferenceName: "1:3", SportyBetDesc: "1:3", Bet9jaSuffix: "13", Position: 15},
			{CanonicalID: "2-3", ReferenceName: "2:3", SportyBetDesc: "2:3", Bet9jaSuffix: "23", Position: 16},
			{CanonicalID: "other", ReferenceName: "Other", SportyBetDesc: "Other", Bet9jaSuffix: "OTH", Position: 17},
		},
		Variant: true,
	},
	{
		CanonicalID: "multigoals", DisplayName: "Multigoals",
		ReferenceMarketID: "3830", SportyBetMarketID: "552", Bet9jaKey: "MG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-2", ReferenceName: "1-2", SportyBetDesc: "1-2", Bet9jaSuffix: "12", Position: 1},
			{CanonicalID: "1-3", ReferenceName: "1-3", SportyBetDesc: "1-3", Bet9jaSuffix: "13", Position: 2},
			{CanonicalID: "2-3", ReferenceName: "2-3", SportyBetDesc: "2-3", Bet9jaSuffix: "23", Position: 3},
			{CanonicalID: "2-4", ReferenceName: "2-4", SportyBetDesc: "2-4", Bet9jaSuffix: "24", Position: 4},
			{CanonicalID: "3-4", ReferenceName: "3-4", SportyBetDesc: "3-4", Bet9jaSuffix: "34", Position: 5},
			{CanonicalID: "4-plus", ReferenceName: "4+", SportyBetDesc: "4+", Bet9jaSuffix: "4P", Position: 6},
			{CanonicalID: "no-goal", ReferenceName: "No Goal", SportyBetDesc: "No Goal", Bet9jaSuffix: "NG", Position: 7},
		},
		Variant: true,
	},
	{
		CanonicalID: "exact-goals", DisplayName: "Exact Number Of Goals",
		ReferenceMarketID: "3831", SportyBetMarketID: "21", Bet9jaKey: "EXG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0", ReferenceName: "0", SportyBetDesc: "0", Bet9jaSuffix: "0", Position: 1},
			{CanonicalID: "1", ReferenceName: "1", SportyBetDesc: "1", Bet9jaSuffix: "1", Position: 2},
			{CanonicalID: "2", ReferenceName: "2", SportyBetDesc: "2", Bet9jaSuffix: "2", Position: 3},
			{CanonicalID: "3", ReferenceName: "3", SportyBetDesc: "3", Bet9jaSuffix: "3", Position: 4},
			{CanonicalID: "4", ReferenceName: "4", SportyBetDesc: "4", Bet9jaSuffix: "4", Position: 5},
			{CanonicalID: "5-plus", ReferenceName: "5+", SportyBetDesc: "5+", Bet9jaSuffix: "5P", Position: 6},
		},
		Variant: true,
	},

	// Composite markets combining two legs.
	{
		CanonicalID: "ht-ft", DisplayName: "Half Time / Full Time",
		ReferenceMarketID: "3832", SportyBetMarketID: "47", Bet9jaKey: "HTFT",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-1", ReferenceName: "1/1", SportyBetDesc: "Home/Home", Bet9jaSuffix: "11", Position: 1},
			{CanonicalID: "1-x", ReferenceName: "1/X", SportyBetDesc: "Home/Draw", Bet9jaSuffix: "1X", Position: 2},
			{CanonicalID: "1-2", ReferenceName: "1/2", SportyBetDesc: "Home/Away", Bet9jaSuffix: "12", Position: 3},
			{CanonicalID: "x-1", ReferenceName: "X/1", SportyBetDesc: "Draw/Home", Bet9jaSuffix: "X1", Position: 4},
			{CanonicalID: "x-x", ReferenceName: "X/X", SportyBetDesc: "Draw/Draw", Bet9jaSuffix: "XX", Position: 5},
			{CanonicalID: "x-2", ReferenceName: "X/2", SportyBetDesc: "Draw/Away", Bet9jaSuffix: "X2", Position: 6},
			{CanonicalID: "2-1", ReferenceName: "2/1", SportyBetDesc: "Away/Home", Bet9jaSuffix: "21", Position: 7},
			{CanonicalID: "2-x", ReferenceName: "2/X", SportyBetDesc: "Away/Draw", Bet9jaSuffix: "2X", Position: 8},
			{CanonicalID: "2-2", ReferenceName: "2/2", SportyBetDesc: "Away/Away", Bet9jaSuffix: "22", Position: 9},
		},
		Composite: true,
	},
	{
		CanonicalID: "result-btts", DisplayName: "Result & Both Teams To Score",
		ReferenceMarketID: "3833", SportyBetMarketID: "78", Bet9jaKey: "1X2GG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-yes", ReferenceName: "1 & Yes", SportyBetDesc: "Home & Yes", Bet9jaSuffix: "1GG", Position: 1},
			{CanonicalID: "home-no", ReferenceName: "1 & No", SportyBetDesc: "Home & No", Bet9jaSuffix: "1NG", Position: 2},
			{CanonicalID: "draw-yes", ReferenceName: "X & Yes", SportyBetDesc: "Draw & Yes", Bet9jaSuffix: "XGG", Position: 3},
			{CanonicalID: "draw-no", ReferenceName: "X & No", SportyBetDesc: "Draw & No", Bet9jaSuffix: "XNG", Position: 4},
			{CanonicalID: "away-yes", ReferenceName: "2 & Yes", SportyBetDesc: "Away & Yes", Bet9jaSuffix: "2GG", Position: 5},
			{CanonicalID: "away-no", ReferenceName: "2 & No", SportyBetDesc: "Away & No", Bet9jaSuffix: "2NG", Position: 6},
		},
		Composite: true,
	},
	{
		CanonicalID: "result-total", DisplayName: "Result & Total Goals",
		ReferenceMarketID: "3834", SportyBetMarketID: "79", Bet9jaKey: "1X2OU",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-over", ReferenceName: "1 & Over", SportyBetDesc: "Home & Over", Bet9jaSuffix: "1O", Position: 1},
			{CanonicalID: "home-under", ReferenceName: "1 & Under", SportyBetDesc: "Home & Under", Bet9jaSuffix: "1U", Position: 2},
			{CanonicalID: "draw-over", ReferenceName: "X & Over", SportyBetDesc: "Draw & Over", Bet9jaSuffix: "XO", Position: 3},
			{CanonicalID: "draw-under", ReferenceName: "X & Under", SportyBetDesc: "Draw & Under", Bet9jaSuffix: "XU", Position: 4},
			{CanonicalID: "away-over", ReferenceName: "2 & Over", SportyBetDesc: "Away & Over", Bet9jaSuffix: "2O", Position: 5},
			{CanonicalID: "away-under", ReferenceName: "2 & Under", SportyBetDesc: "Away & Under", Bet9jaSuffix: "2U", Position: 6},
		},
		OverUnder: true, Composite: true,
	},

	// First-half markets.
	{
		CanonicalID: "1h-1x2", DisplayName: "1st Half - 1X2",
		ReferenceMarketID: "3850", SportyBetMarketID: "60", Bet9jaKey: "1H1X2",
		Outcomes: homeDrawAway(), TimeBased: true,
	},
	{
		CanonicalID: "1h-double-chance", DisplayName: "1st Half - Double Chance",
		ReferenceMarketID: "3851", SportyBetMarketID: "63", Bet9jaKey: "1HDC",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-or-draw", ReferenceName: "1X", SportyBetDesc: "Home or Draw", Bet9jaSuffix: "1X", Position: 1},
			{CanonicalID: "home-or-away", ReferenceName: "12", SportyBetDesc: "Home or Away", Bet9jaSuffix: "12", Position: 2},
			{CanonicalID: "draw-or-away", ReferenceName: "X2", SportyBetDesc: "Draw or Away", Bet9jaSuffix: "X2", Position: 3},
		},
		TimeBased: true,
	},
	{
		CanonicalID: "1h-draw-no-bet", DisplayName: "1st Half - Draw No Bet",
		ReferenceMarketID: "3852", SportyBetMarketID: "64", Bet9jaKey: "1HDNB",
		Outcomes: homeAway(), TimeBased: true,
	},
	{
		CanonicalID: "1h-total-goals", DisplayName: "1st Half - Total Goals",
		ReferenceMarketID: "3853", SportyBetMarketID: "68", Bet9jaKey: "1HOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-btts", DisplayName: "1st Half - Both Teams To Score",
		ReferenceMarketID: "3854", SportyBetMarketID: "76", Bet9jaKey: "1HGGNG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "yes", ReferenceName: "Yes", SportyBetDesc: "Yes", Bet9jaSuffix: "GG", Position: 1},
			{CanonicalID: "no", ReferenceName: "No", SportyBetDesc: "No", Bet9jaSuffix: "NG", Position: 2},
		},
		TimeBased: true,
	},
	{
		CanonicalID: "1h-asian-handicap", DisplayName: "1st Half - Asian Handicap",
		ReferenceMarketID: "3855", SportyBetMarketID: "66", Bet9jaKey: "1HAH",
		Outcomes: homeAway(), Handicap: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-odd-even", DisplayName: "1st Half - Odd/Even",
		ReferenceMarketID: "3856", SportyBetMarketID: "74", Bet9jaKey: "1HOE",
		Outcomes: oddEven(), TimeBased: true,
	},
	{
		CanonicalID: "1h-corners", DisplayName: "1st Half - Total Corners",
		ReferenceMarketID: "1096785", SportyBetMarketID: "168", Bet9jaKey: "1HCRNOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},

	// Second-half markets.
	{
		CanonicalID: "2h-1x2", DisplayName: "2nd Half - 1X2",
		ReferenceMarketID: "3860", SportyBetMarketID: "83", Bet9jaKey: "2H1X2",
		Outcomes: homeDrawAway(), TimeBased: true,
	},
	{
		CanonicalID: "2h-total-goals", DisplayName: "2nd Half - Total Goals",
		ReferenceMarketID: "3861", SportyBetMarketID: "90", Bet9jaKey: "2HOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "2h-btts", DisplayName: "2nd Half - Both Teams To Score",
		ReferenceMarketID: "3862", SportyBetMarketID: "95", Bet9jaKey: "2HGGNG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "yes", ReferenceName: "Yes", SportyBetDesc: "Yes", Bet9jaSuffix: "GG", Position: 1},
			{CanonicalID: "no", ReferenceName: "No", SportyBetDesc: "No", Bet9jaSuffix: "NG", Position: 2},
		},
		TimeBased: true,
	},

	// Half comparisons.
	{
		CanonicalID: "highest-scoring-half", DisplayName: "Highest Scoring Half",
		ReferenceMarketID: "3870", SportyBetMarketID: "81", Bet9jaKey: "HSH",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "first", ReferenceName: "1st Half", SportyBetDesc: "1st Half", Bet9jaSuffix: "1H", Position: 1},
			{CanonicalID: "equal", ReferenceName: "Equal", SportyBetDesc: "Equal", Bet9jaSuffix: "EQ", Position: 2},
			{CanonicalID: "second", ReferenceName: "2nd Half", SportyBetDesc: "2nd Half", Bet9jaSuffix: "2H", Position: 3},
		},
	},
	{
		CanonicalID: "home-win-both-halves", DisplayName: "Home Wins Both Halves",
		ReferenceMarketID: "3871", SportyBetMarketID: "84", Bet9jaKey: "HWBH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-win-both-halves", DisplayName: "Away Wins Both Halves",
		ReferenceMarketID: "3872", SportyBetMarketID: "85", Bet9jaKey: "AWBH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-score-both-halves", DisplayName: "Home Scores In Both Halves",
		ReferenceMarketID: "3873", SportyBetMarketID: "86", Bet9jaKey: "HSBH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-score-both-halves", DisplayName: "Away Scores In Both Halves",
		ReferenceMarketID: "3874", SportyBetMarketID: "87", Bet9jaKey: "ASBH",
		Outcomes: yesNo(),
	},

	// Corners beyond totals.
	{
		CanonicalID: "corners-1x2", DisplayName: "Corners - 1X2",
		ReferenceMarketID: "1096786", SportyBetMarketID: "165", Bet9jaKey: "CRN1X2",
		Outcomes: homeDrawAway(),
	},
	{
		CanonicalID: "corners-odd-even", DisplayName: "Corners - Odd/Even",
		ReferenceMarketID: "1096787", SportyBetMarketID: "169", Bet9jaKey: "CRNOE",
		Outcomes: oddEven(),
	},

	// Markets without full cross-source coverage: the reference platform
	// offers them, one competitor may not.
	{
		CanonicalID: "first-goal-interval", DisplayName: "First Goal Interval",
		ReferenceMarketID: "3880", SportyBetMarketID: "97",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-15", ReferenceName: "1-15", SportyBetDesc: "1:00 - 15:00", Position: 1},
			{CanonicalID: "16-30", ReferenceName: "16-30", SportyBetDesc: "15:01 - 30:00", Position: 2},
			{CanonicalID: "31-45", ReferenceName: "31-45", SportyBetDesc: "30:01 - 45:00", Position: 3},
			{CanonicalID: "46-60", ReferenceName: "46-60", SportyBetDesc: "45:01 - 60:00", Position: 4},
			{CanonicalID: "61-75", ReferenceName: "61-75", SportyBetDesc: "60:01 - 75:00", Position: 5},
			{CanonicalID: "76-90", ReferenceName: "76-90", SportyBetDesc: "75:01 - 90:00", Position: 6},
			{CanonicalID: "none", ReferenceName: "No Goal", SportyBetDesc: "No Goal", Position: 7},
		},
		TimeBased: true, Variant: true,
	},
	{
		CanonicalID: "last-team-to-score", DisplayName: "Last Team To Score",
		ReferenceMarketID: "3881", Bet9jaKey: "LTS",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "none", ReferenceName: "None", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "goal-in-both-halves", DisplayName: "Goal In Both Halves",
		ReferenceMarketID: "3882", SportyBetMarketID: "88", Bet9jaKey: "GBH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-exact-goals", DisplayName: "Home Team Exact Goals",
		ReferenceMarketID: "3883", SportyBetMarketID: "23",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0", ReferenceName: "0", SportyBetDesc: "0", Position: 1},
			{CanonicalID: "1", ReferenceName: "1", SportyBetDesc: "1", Position: 2},
			{CanonicalID: "2", ReferenceName: "2", SportyBetDesc: "2", Position: 3},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Position: 4},
		},
		Variant: true,
	},
	{
		CanonicalID: "away-exact-goals", DisplayName: "Away Team Exact Goals",
		ReferenceMarketID: "3884", SportyBetMarketID: "24",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0", ReferenceName: "0", SportyBetDesc: "0", Position: 1},
			{CanonicalID: "1", ReferenceName: "1", SportyBetDesc: "1", Position: 2},
			{CanonicalID: "2", ReferenceName: "2", SportyBetDesc: "2", Position: 3},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Position: 4},
		},
		Variant: true,
	},

	// Per-team odd/even.
	{
		CanonicalID: "home-odd-even", DisplayName: "Home Team Odd/Even",
		ReferenceMarketID: "3885", SportyBetMarketID: "27", Bet9jaKey: "HOE",
		Outcomes: oddEven(),
	},
	{
		CanonicalID: "away-odd-even", DisplayName: "Away Team Odd/Even",
		ReferenceMarketID: "3886", SportyBetMarketID: "28", Bet9jaKey: "AOE",
		Outcomes: oddEven(),
	},

	// Half-result props.
	{
		CanonicalID: "home-win-either-half", DisplayName: "Home Wins Either Half",
		ReferenceMarketID: "3887", SportyBetMarketID: "91", Bet9jaKey: "HWEH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-win-either-half", DisplayName: "Away Wins Either Half",
		ReferenceMarketID: "3888", SportyBetMarketID: "92", Bet9jaKey: "AWEH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "both-teams-score-both-halves", DisplayName: "Both Teams Score In Both Halves",
		ReferenceMarketID: "3889", SportyBetMarketID: "89", Bet9jaKey: "GGBH",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-win-from-behind", DisplayName: "Home Wins From Behind",
		ReferenceMarketID: "3890", SportyBetMarketID: "93", Bet9jaKey: "HWFB",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "away-win-from-behind", DisplayName: "Away Wins From Behind",
		ReferenceMarketID: "3891", SportyBetMarketID: "94", Bet9jaKey: "AWFB",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "both-halves-over-1-5", DisplayName: "Over 1.5 Goals In Both Halves",
		ReferenceMarketID: "3896", SportyBetMarketID: "96", Bet9jaKey: "BHO15",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "both-halves-under-1-5", DisplayName: "Under 1.5 Goals In Both Halves",
		ReferenceMarketID: "3897", SportyBetMarketID: "102", Bet9jaKey: "BHU15",
		Outcomes: yesNo(),
	},

	// Goal timing props.
	{
		CanonicalID: "own-goal", DisplayName: "Own Goal",
		ReferenceMarketID: "3892", SportyBetMarketID: "98", Bet9jaKey: "OG",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "goal-before-28", DisplayName: "Goal Before 28:00",
		ReferenceMarketID: "3893", SportyBetMarketID: "99", Bet9jaKey: "EG",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "goal-after-75", DisplayName: "Goal After 75:00",
		ReferenceMarketID: "3894", SportyBetMarketID: "100", Bet9jaKey: "LG",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "either-team-win-to-nil", DisplayName: "Either Team Wins To Nil",
		ReferenceMarketID: "3895", SportyBetMarketID: "101", Bet9jaKey: "WTN",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-score-in-1h", DisplayName: "Home Scores In 1st Half",
		ReferenceMarketID: "3898", SportyBetMarketID: "103", Bet9jaKey: "HS1H",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "away-score-in-1h", DisplayName: "Away Scores In 1st Half",
		ReferenceMarketID: "3899", SportyBetMarketID: "104", Bet9jaKey: "AS1H",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "home-score-in-2h", DisplayName: "Home Scores In 2nd Half",
		ReferenceMarketID: "3900", SportyBetMarketID: "105", Bet9jaKey: "HS2H",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "away-score-in-2h", DisplayName: "Away Scores In 2nd Half",
		ReferenceMarketID: "3901", SportyBetMarketID: "106", Bet9jaKey: "AS2H",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "half-with-first-goal", DisplayName: "Half With First Goal",
		ReferenceMarketID: "3902", SportyBetMarketID: "107", Bet9jaKey: "HFG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "first", ReferenceName: "1st Half", SportyBetDesc: "1st Half", Bet9jaSuffix: "1H", Position: 1},
			{CanonicalID: "none", ReferenceName: "No Goal", SportyBetDesc: "No Goal", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "second", ReferenceName: "2nd Half", SportyBetDesc: "2nd Half", Bet9jaSuffix: "2H", Position: 3},
		},
		TimeBased: true,
	},
	{
		CanonicalID: "to-qualify", DisplayName: "To Qualify",
		ReferenceMarketID: "3903", SportyBetMarketID: "108", Bet9jaKey: "TQ",
		Outcomes: homeAway(),
	},
	{
		CanonicalID: "penalty-missed", DisplayName: "Penalty Missed",
		ReferenceMarketID: "3926", SportyBetMarketID: "116", Bet9jaKey: "PENM",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "home-highest-scoring-half", DisplayName: "Home Team Highest Scoring Half",
		ReferenceMarketID: "3927", SportyBetMarketID: "117", Bet9jaKey: "HHSH",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "first", ReferenceName: "1st Half", SportyBetDesc: "1st Half", Bet9jaSuffix: "1H", Position: 1},
			{CanonicalID: "equal", ReferenceName: "Equal", SportyBetDesc: "Equal", Bet9jaSuffix: "EQ", Position: 2},
			{CanonicalID: "second", ReferenceName: "2nd Half", SportyBetDesc: "2nd Half", Bet9jaSuffix: "2H", Position: 3},
		},
	},

	// More variant markets.
	{
		CanonicalID: "winning-margin", DisplayName: "Winning Margin",
		ReferenceMarketID: "3904", SportyBetMarketID: "109", Bet9jaKey: "WM",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-by-1", ReferenceName: "Home by 1", SportyBetDesc: "Home by 1", Bet9jaSuffix: "H1", Position: 1},
			{CanonicalID: "home-by-2", ReferenceName: "Home by 2", SportyBetDesc: "Home by 2", Bet9jaSuffix: "H2", Position: 2},
			{CanonicalID: "home-by-3-plus", ReferenceName: "Home by 3+", SportyBetDesc: "Home by 3+", Bet9jaSuffix: "H3P", Position: 3},
			{CanonicalID: "draw", ReferenceName: "Draw", SportyBetDesc: "Draw", Bet9jaSuffix: "X", Position: 4},
			{CanonicalID: "away-by-1", ReferenceName: "Away by 1", SportyBetDesc: "Away by 1", Bet9jaSuffix: "A1", Position: 5},
			{CanonicalID: "away-by-2", ReferenceName: "Away by 2", SportyBetDesc: "Away by 2", Bet9jaSuffix: "A2", Position: 6},
			{CanonicalID: "away-by-3-plus", ReferenceName: "Away by 3+", SportyBetDesc: "Away by 3+", Bet9jaSuffix: "A3P", Position: 7},
		},
		Variant: true,
	},
	{
		CanonicalID: "goals-range", DisplayName: "Goals Range",
		ReferenceMarketID: "3905", SportyBetMarketID: "22", Bet9jaKey: "GR",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0-1", ReferenceName: "0-1", SportyBetDesc: "0-1", Bet9jaSuffix: "01", Position: 1},
			{CanonicalID: "2-3", ReferenceName: "2-3", SportyBetDesc: "2-3", Bet9jaSuffix: "23", Position: 2},
			{CanonicalID: "4-6", ReferenceName: "4-6", SportyBetDesc: "4-6", Bet9jaSuffix: "46", Position: 3},
			{CanonicalID: "7-plus", ReferenceName: "7+", SportyBetDesc: "7+", Bet9jaSuffix: "7P", Position: 4},
		},
		Variant: true,
	},
	{
		CanonicalID: "home-multigoals", DisplayName: "Home Team Multigoals",
		ReferenceMarketID: "3906", SportyBetMarketID: "553", Bet9jaKey: "HMG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-2", ReferenceName: "1-2", SportyBetDesc: "1-2", Bet9jaSuffix: "12", Position: 1},
			{CanonicalID: "2-3", ReferenceName: "2-3", SportyBetDesc: "2-3", Bet9jaSuffix: "23", Position: 2},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Bet9jaSuffix: "3P", Position: 3},
			{CanonicalID: "no-goal", ReferenceName: "No Goal", SportyBetDesc: "No Goal", Bet9jaSuffix: "NG", Position: 4},
		},
		Variant: true,
	},
	{
		CanonicalID: "away-multigoals", DisplayName: "Away Team Multigoals",
		ReferenceMarketID: "3907", SportyBetMarketID: "554", Bet9jaKey: "AMG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "1-2", ReferenceName: "1-2", SportyBetDesc: "1-2", Bet9jaSuffix: "12", Position: 1},
			{CanonicalID: "2-3", ReferenceName: "2-3", SportyBetDesc: "2-3", Bet9jaSuffix: "23", Position: 2},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Bet9jaSuffix: "3P", Position: 3},
			{CanonicalID: "no-goal", ReferenceName: "No Goal", SportyBetDesc: "No Goal", Bet9jaSuffix: "NG", Position: 4},
		},
		Variant: true,
	},

	// More composites.
	{
		CanonicalID: "double-chance-btts", DisplayName: "Double Chance & Both Teams To Score",
		ReferenceMarketID: "3908", SportyBetMarketID: "80", Bet9jaKey: "DCGG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-or-draw-yes", ReferenceName: "1X & Yes", SportyBetDesc: "Home or Draw & Yes", Bet9jaSuffix: "1XGG", Position: 1},
			{CanonicalID: "home-or-draw-no", ReferenceName: "1X & No", SportyBetDesc: "Home or Draw & No", Bet9jaSuffix: "1XNG", Position: 2},
			{CanonicalID: "home-or-away-yes", ReferenceName: "12 & Yes", SportyBetDesc: "Home or Away & Yes", Bet9jaSuffix: "12GG", Position: 3},
			{CanonicalID: "home-or-away-no", ReferenceName: "12 & No", SportyBetDesc: "Home or Away & No", Bet9jaSuffix: "12NG", Position: 4},
			{CanonicalID: "draw-or-away-yes", ReferenceName: "X2 & Yes", SportyBetDesc: "Draw or Away & Yes", Bet9jaSuffix: "X2GG", Position: 5},
			{CanonicalID: "draw-or-away-no", ReferenceName: "X2 & No", SportyBetDesc: "Draw or Away & No", Bet9jaSuffix: "X2NG", Position: 6},
		},
		Composite: true,
	},
	{
		CanonicalID: "double-chance-total", DisplayName: "Double Chance & Total Goals",
		ReferenceMarketID: "3909", SportyBetMarketID: "82", Bet9jaKey: "DCOU",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-or-draw-over", ReferenceName: "1X & Over", SportyBetDesc: "Home or Draw & Over", Bet9jaSuffix: "1XO", Position: 1},
			{CanonicalID: "home-or-draw-under", ReferenceName: "1X & Under", SportyBetDesc: "Home or Draw & Under", Bet9jaSuffix: "1XU", Position: 2},
			{CanonicalID: "home-or-away-over", ReferenceName: "12 & Over", SportyBetDesc: "Home or Away & Over", Bet9jaSuffix: "12O", Position: 3},
			{CanonicalID: "home-or-away-under", ReferenceName: "12 & Under", SportyBetDesc: "Home or Away & Under", Bet9jaSuffix: "12U", Position: 4},
			{CanonicalID: "draw-or-away-over", ReferenceName: "X2 & Over", SportyBetDesc: "Draw or Away & Over", Bet9jaSuffix: "X2O", Position: 5},
			{CanonicalID: "draw-or-away-under", ReferenceName: "X2 & Under", SportyBetDesc: "Draw or Away & Under", Bet9jaSuffix: "X2U", Position: 6},
		},
		OverUnder: true, Composite: true,
	},
	{
		CanonicalID: "btts-total", DisplayName: "Both Teams To Score & Total Goals",
		ReferenceMarketID: "3910", SportyBetMarketID: "77", Bet9jaKey: "GGOU",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "yes-over", ReferenceName: "Yes & Over", SportyBetDesc: "Yes & Over", Bet9jaSuffix: "GGO", Position: 1},
			{CanonicalID: "yes-under", ReferenceName: "Yes & Under", SportyBetDesc: "Yes & Under", Bet9jaSuffix: "GGU", Position: 2},
			{CanonicalID: "no-over", ReferenceName: "No & Over", SportyBetDesc: "No & Over", Bet9jaSuffix: "NGO", Position: 3},
			{CanonicalID: "no-under", ReferenceName: "No & Under", SportyBetDesc: "No & Under", Bet9jaSuffix: "NGU", Position: 4},
		},
		OverUnder: true, Composite: true,
	},
	{
		CanonicalID: "1h-result-total", DisplayName: "1st Half - Result & Total Goals",
		ReferenceMarketID: "3911", SportyBetMarketID: "67", Bet9jaKey: "1H1X2OU",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-over", ReferenceName: "1 & Over", SportyBetDesc: "Home & Over", Bet9jaSuffix: "1O", Position: 1},
			{CanonicalID: "home-under", ReferenceName: "1 & Under", SportyBetDesc: "Home & Under", Bet9jaSuffix: "1U", Position: 2},
			{CanonicalID: "draw-over", ReferenceName: "X & Over", SportyBetDesc: "Draw & Over", Bet9jaSuffix: "XO", Position: 3},
			{CanonicalID: "draw-under", ReferenceName: "X & Under", SportyBetDesc: "Draw & Under", Bet9jaSuffix: "XU", Position: 4},
			{CanonicalID: "away-over", ReferenceName: "2 & Over", SportyBetDesc: "Away & Over", Bet9jaSuffix: "2O", Position: 5},
			{CanonicalID: "away-under", ReferenceName: "2 & Under", SportyBetDesc: "Away & Under", Bet9jaSuffix: "2U", Position: 6},
		},
		OverUnder: true, Composite: true, TimeBased: true,
	},

	// Remaining first-half markets.
	{
		CanonicalID: "1h-home-total-goals", DisplayName: "1st Half - Home Team Total Goals",
		ReferenceMarketID: "3912", SportyBetMarketID: "69", Bet9jaKey: "1HHOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-away-total-goals", DisplayName: "1st Half - Away Team Total Goals",
		ReferenceMarketID: "3913", SportyBetMarketID: "70", Bet9jaKey: "1HAOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-handicap-1x2", DisplayName: "1st Half - Handicap 1X2",
		ReferenceMarketID: "3914", SportyBetMarketID: "65", Bet9jaKey: "1HH1X2",
		Outcomes: homeDrawAway(), Handicap: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-correct-score", DisplayName: "1st Half - Correct Score",
		ReferenceMarketID: "3915", SportyBetMarketID: "71", Bet9jaKey: "1HCS",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0-0", ReferenceName: "0:0", SportyBetDesc: "0:0", Bet9jaSuffix: "00", Position: 1},
			{CanonicalID: "1-0", ReferenceName: "1:0", SportyBetDesc: "1:0", Bet9jaSuffix: "10", Position: 2},
			{CanonicalID: "0-1", ReferenceName: "0:1", SportyBetDesc: "0:1", Bet9jaSuffix: "01", Position: 3},
			{CanonicalID: "1-1", ReferenceName: "1:1", SportyBetDesc: "1:1", Bet9jaSuffix: "11", Position: 4},
			{CanonicalID: "2-0", ReferenceName: "2:0", SportyBetDesc: "2:0", Bet9jaSuffix: "20", Position: 5},
			{CanonicalID: "0-2", ReferenceName: "0:2", SportyBetDesc: "0:2", Bet9jaSuffix: "02", Position: 6},
			{CanonicalID: "2-1", ReferenceName: "2:1", SportyBetDesc: "2:1", Bet9jaSuffix: "21", Position: 7},
			{CanonicalID: "1-2", ReferenceName: "1:2", SportyBetDesc: "1:2", Bet9jaSuffix: "12", Position: 8},
			{CanonicalID: "2-2", ReferenceName: "2:2", SportyBetDesc: "2:2", Bet9jaSuffix: "22", Position: 9},
			{CanonicalID: "other", ReferenceName: "Other", SportyBetDesc: "Other", Bet9jaSuffix: "OTH", Position: 10},
		},
		Variant: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-exact-goals", DisplayName: "1st Half - Exact Number Of Goals",
		ReferenceMarketID: "3916", SportyBetMarketID: "72", Bet9jaKey: "1HEXG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0", ReferenceName: "0", SportyBetDesc: "0", Bet9jaSuffix: "0", Position: 1},
			{CanonicalID: "1", ReferenceName: "1", SportyBetDesc: "1", Bet9jaSuffix: "1", Position: 2},
			{CanonicalID: "2", ReferenceName: "2", SportyBetDesc: "2", Bet9jaSuffix: "2", Position: 3},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Bet9jaSuffix: "3P", Position: 4},
		},
		Variant: true, TimeBased: true,
	},
	{
		CanonicalID: "1h-home-clean-sheet", DisplayName: "1st Half - Home Team Clean Sheet",
		ReferenceMarketID: "3917", SportyBetMarketID: "73", Bet9jaKey: "1HHCS",
		Outcomes: yesNo(), TimeBased: true,
	},
	{
		CanonicalID: "1h-away-clean-sheet", DisplayName: "1st Half - Away Team Clean Sheet",
		ReferenceMarketID: "3918", SportyBetMarketID: "61", Bet9jaKey: "1HACS",
		Outcomes: yesNo(), TimeBased: true,
	},

	// Remaining second-half markets.
	{
		CanonicalID: "2h-double-chance", DisplayName: "2nd Half - Double Chance",
		ReferenceMarketID: "3919", SportyBetMarketID: "62", Bet9jaKey: "2HDC",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home-or-draw", ReferenceName: "1X", SportyBetDesc: "Home or Draw", Bet9jaSuffix: "1X", Position: 1},
			{CanonicalID: "home-or-away", ReferenceName: "12", SportyBetDesc: "Home or Away", Bet9jaSuffix: "12", Position: 2},
			{CanonicalID: "draw-or-away", ReferenceName: "X2", SportyBetDesc: "Draw or Away", Bet9jaSuffix: "X2", Position: 3},
		},
		TimeBased: true,
	},
	{
		CanonicalID: "2h-draw-no-bet", DisplayName: "2nd Half - Draw No Bet",
		ReferenceMarketID: "3920", SportyBetMarketID: "110", Bet9jaKey: "2HDNB",
		Outcomes: homeAway(), TimeBased: true,
	},
	{
		CanonicalID: "2h-asian-handicap", DisplayName: "2nd Half - Asian Handicap",
		ReferenceMarketID: "3921", SportyBetMarketID: "111", Bet9jaKey: "2HAH",
		Outcomes: homeAway(), Handicap: true, TimeBased: true,
	},
	{
		CanonicalID: "2h-odd-even", DisplayName: "2nd Half - Odd/Even",
		ReferenceMarketID: "3922", SportyBetMarketID: "112", Bet9jaKey: "2HOE",
		Outcomes: oddEven(), TimeBased: true,
	},
	{
		CanonicalID: "2h-home-total-goals", DisplayName: "2nd Half - Home Team Total Goals",
		ReferenceMarketID: "3923", SportyBetMarketID: "113", Bet9jaKey: "2HHOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "2h-away-total-goals", DisplayName: "2nd Half - Away Team Total Goals",
		ReferenceMarketID: "3924", SportyBetMarketID: "114", Bet9jaKey: "2HAOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
	{
		CanonicalID: "2h-exact-goals", DisplayName: "2nd Half - Exact Number Of Goals",
		ReferenceMarketID: "3925", SportyBetMarketID: "115", Bet9jaKey: "2HEXG",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0", ReferenceName: "0", SportyBetDesc: "0", Bet9jaSuffix: "0", Position: 1},
			{CanonicalID: "1", ReferenceName: "1", SportyBetDesc: "1", Bet9jaSuffix: "1", Position: 2},
			{CanonicalID: "2", ReferenceName: "2", SportyBetDesc: "2", Bet9jaSuffix: "2", Position: 3},
			{CanonicalID: "3-plus", ReferenceName: "3+", SportyBetDesc: "3+", Bet9jaSuffix: "3P", Position: 4},
		},
		Variant: true, TimeBased: true,
	},

	// Remaining corner markets.
	{
		CanonicalID: "home-total-corners", DisplayName: "Home Team Total Corners",
		ReferenceMarketID: "1096791", SportyBetMarketID: "170", Bet9jaKey: "HCRNOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "away-total-corners", DisplayName: "Away Team Total Corners",
		ReferenceMarketID: "1096792", SportyBetMarketID: "171", Bet9jaKey: "ACRNOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "first-corner", DisplayName: "First Corner",
		ReferenceMarketID: "1096793", SportyBetMarketID: "172", Bet9jaKey: "FCRN",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "none", ReferenceName: "None", SportyBetDesc: "No Corner", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "last-corner", DisplayName: "Last Corner",
		ReferenceMarketID: "1096794", SportyBetMarketID: "173", Bet9jaKey: "LCRN",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "none", ReferenceName: "None", SportyBetDesc: "No Corner", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "corners-range", DisplayName: "Corners Range",
		ReferenceMarketID: "1096795", SportyBetMarketID: "174", Bet9jaKey: "CRNR",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "0-8", ReferenceName: "0-8", SportyBetDesc: "0-8", Bet9jaSuffix: "08", Position: 1},
			{CanonicalID: "9-11", ReferenceName: "9-11", SportyBetDesc: "9-11", Bet9jaSuffix: "911", Position: 2},
			{CanonicalID: "12-plus", ReferenceName: "12+", SportyBetDesc: "12+", Bet9jaSuffix: "12P", Position: 3},
		},
		Variant: true,
	},
	{
		CanonicalID: "race-to-3-corners", DisplayName: "Race To 3 Corners",
		ReferenceMarketID: "1096799", SportyBetMarketID: "178", Bet9jaKey: "CRNR3",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "neither", ReferenceName: "Neither", SportyBetDesc: "Neither", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "1h-corners-1x2", DisplayName: "1st Half - Corners 1X2",
		ReferenceMarketID: "1096796", SportyBetMarketID: "175", Bet9jaKey: "1HCRN1X2",
		Outcomes: homeDrawAway(), TimeBased: true,
	},
	{
		CanonicalID: "1h-corners-odd-even", DisplayName: "1st Half - Corners Odd/Even",
		ReferenceMarketID: "1096797", SportyBetMarketID: "176", Bet9jaKey: "1HCRNOE",
		Outcomes: oddEven(), TimeBased: true,
	},
	{
		CanonicalID: "1h-corner-handicap", DisplayName: "1st Half - Corner Handicap",
		ReferenceMarketID: "1096800", SportyBetMarketID: "179", Bet9jaKey: "1HCRNAH",
		Outcomes: homeAway(), Handicap: true, TimeBased: true,
	},
	{
		CanonicalID: "2h-total-corners", DisplayName: "2nd Half - Total Corners",
		ReferenceMarketID: "1096798", SportyBetMarketID: "177", Bet9jaKey: "2HCRNOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},

	// Card markets beyond totals.
	{
		CanonicalID: "cards-1x2", DisplayName: "Cards - 1X2",
		ReferenceMarketID: "1096801", SportyBetMarketID: "140", Bet9jaKey: "CRD1X2",
		Outcomes: homeDrawAway(),
	},
	{
		CanonicalID: "home-total-cards", DisplayName: "Home Team Total Cards",
		ReferenceMarketID: "1096802", SportyBetMarketID: "141", Bet9jaKey: "HCRDOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "away-total-cards", DisplayName: "Away Team Total Cards",
		ReferenceMarketID: "1096803", SportyBetMarketID: "142", Bet9jaKey: "ACRDOU",
		Outcomes: overUnder(), OverUnder: true,
	},
	{
		CanonicalID: "cards-odd-even", DisplayName: "Cards - Odd/Even",
		ReferenceMarketID: "1096804", SportyBetMarketID: "143", Bet9jaKey: "CRDOE",
		Outcomes: oddEven(),
	},
	{
		CanonicalID: "red-card", DisplayName: "Red Card In Match",
		ReferenceMarketID: "1096805", SportyBetMarketID: "144", Bet9jaKey: "RC",
		Outcomes: yesNo(),
	},
	{
		CanonicalID: "first-card", DisplayName: "First Card",
		ReferenceMarketID: "1096806", SportyBetMarketID: "145", Bet9jaKey: "FCRD",
		Outcomes: []OutcomeDefinition{
			{CanonicalID: "home", ReferenceName: "1", SportyBetDesc: "Home", Bet9jaSuffix: "1", Position: 1},
			{CanonicalID: "none", ReferenceName: "None", SportyBetDesc: "No Card", Bet9jaSuffix: "NONE", Position: 2},
			{CanonicalID: "away", ReferenceName: "2", SportyBetDesc: "Away", Bet9jaSuffix: "2", Position: 3},
		},
	},
	{
		CanonicalID: "1h-total-cards", DisplayName: "1st Half - Total Cards",
		ReferenceMarketID: "1096807", SportyBetMarketID: "146", Bet9jaKey: "1HCRDOU",
		Outcomes: overUnder(), OverUnder: true, TimeBased: true,
	},
}
