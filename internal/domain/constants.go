package domain

// Fixture items seeded by migration 00002. Each level is crafted from ten of
// the previous one: test2 <- 10 x test1, test3 <- 10 x test2, test4 <- 10 x test3.
const (
	FixtureItemTest1 ItemID = 69696969
	FixtureItemTest2 ItemID = 69696970
	FixtureItemTest3 ItemID = 69696971
	FixtureItemTest4 ItemID = 69696972

	FixtureRecipeQuantity Quantity = 10
)

// Default limits for item search.
const (
	DefaultSearchLimit = 100
	MaxSearchLimit     = 500
)
