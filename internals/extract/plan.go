package extract

// PlanEntry is one auxiliary data category fetched per run. Path may contain
// {uuid} and {profile} placeholders, filled from the run's identity and the
// selected profile at extraction time.
type PlanEntry struct {
	Path        string
	File        string
	Description string
	Emoji       string
}

// Plan returns the fixed, ordered extraction plan. The order is
// deterministic but not load bearing: every entry is fetched independently
// and a failing entry never aborts the batch. The full raw profile payload
// is written separately and is not part of this list.
func Plan() []PlanEntry {
	return []PlanEntry{
		{"player?uuid={uuid}", "player.json", "Player Data", "🧍"},
		{"status?uuid={uuid}", "status.json", "Online Status", "🟢"},
		{"recentgames?uuid={uuid}", "recent_games.json", "Recent Games", "🎮"},
		{"skyblock/museum?profile={profile}", "museum.json", "Museum Contents", "🏛️"},
		{"skyblock/garden?profile={profile}", "garden.json", "Garden Progress", "🌱"},
		{"skyblock/bingo?uuid={uuid}", "bingo.json", "Bingo Progress", "🎲"},
		{"skyblock/auction?player={uuid}&profile={profile}", "auctions.json", "Active Auctions", "🔨"},
		{"skyblock/bazaar", "bazaar.json", "Bazaar Prices", "💰"},
		{"skyblock/news", "news.json", "SkyBlock News", "📰"},
		{"skyblock/firesales", "fire_sales.json", "Fire Sales", "🔥"},
		{"resources/skyblock/election", "election.json", "Mayor & Election", "🗳️"},
		{"resources/skyblock/skills", "skills.json", "Skill Definitions", "📚"},
		{"resources/skyblock/collections", "collections.json", "Collection Definitions", "📦"},
	}
}
