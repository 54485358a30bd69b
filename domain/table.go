package domain

// Table is a mongo collection name
type Table string

const (
	TableAccounts         Table = "accounts"
	TableCollections      Table = "collections"
	TableDrops            Table = "drops"
	TableMintLedger       Table = "mint_ledger"
	TableWhitelist        Table = "whitelist"
	TableTokens           Table = "tokens"
	TableHoldings         Table = "holdings"
	TableTokenSupplies    Table = "token_supplies"
	TableOperatorApproval Table = "operator_approvals"
	TableBalances         Table = "balances"
	TableListings         Table = "listings"
	TableEvents           Table = "events"
	TableSequences        Table = "sequences"
)
