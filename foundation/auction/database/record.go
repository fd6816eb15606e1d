package database

// RecordType identifies the kind of state mutation a journal record holds.
type RecordType string

// Set of record types written to the journal. Every committed mutation of the
// auction table or the escrow ledger appends exactly one record.
const (
	RecordAuctionCreated   RecordType = "auction_created"
	RecordBidPlaced        RecordType = "bid_placed"
	RecordAuctionFinalized RecordType = "auction_finalized"
	RecordRefundWithdrawn  RecordType = "refund_withdrawn"
)

// RecordData represents one entry in the append-only journal. The in-memory
// database is rebuilt by replaying these records in order at startup.
type RecordData struct {
	Number     uint64     `cbor:"1,keyasint" json:"number"`
	Type       RecordType `cbor:"2,keyasint" json:"type"`
	AuctionID  uint64     `cbor:"3,keyasint" json:"auction_id"`
	Account    AccountID  `cbor:"4,keyasint" json:"account"` // Seller, bidder or withdrawer depending on type.
	Asset      AssetRef   `cbor:"5,keyasint" json:"asset,omitempty"`
	StartPrice uint64     `cbor:"6,keyasint" json:"start_price,omitempty"`
	Value      uint64     `cbor:"7,keyasint" json:"value,omitempty"`
	EndTime    uint64     `cbor:"8,keyasint" json:"end_time,omitempty"` // Unix seconds.
	TimeStamp  uint64     `cbor:"9,keyasint" json:"timestamp"`
}

// =============================================================================

// Serializer interface represents the behavior required to be implemented by
// any package providing support for storing and reading the journal.
type Serializer interface {
	Write(record RecordData) error
	GetRecord(num uint64) (RecordData, error)
	ForEach() Iterator
	Close() error
	Reset() error
}

// Iterator interface represents the behavior required to be implemented by
// any package providing support to iterate over the journal records.
type Iterator interface {
	Next() (RecordData, error)
	Done() bool
}
