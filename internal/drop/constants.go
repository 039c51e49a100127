package drop

// Error context strings
const (
	ErrContextFailedToGetUser    = "failed to get user"
	ErrContextFailedToListItems  = "failed to list candidate items"
	ErrContextFailedToBeginTx    = "failed to begin drop transaction"
	ErrContextFailedToInsertDrop = "failed to insert drop"
	ErrContextFailedToAdvance    = "failed to advance reward window"
	ErrContextFailedToCommit     = "failed to commit drop transaction"
	ErrContextFailedToGetItem    = "failed to get item"
	ErrContextFailedToMintDrop   = "failed to mint drop"
)

// Log messages
const (
	LogMsgAttemptBlocked     = "Drop attempt blocked by reward window"
	LogMsgAttemptLostFlip    = "Drop attempt lost the random gate"
	LogMsgNoItemsForRarity   = "No available items at rolled rarity"
	LogMsgAttemptLostRace    = "Drop attempt lost the reward window race"
	LogMsgDropIssued         = "Drop issued"
	LogMsgDropMinted         = "Drop minted by administrator"
	LogMsgEventPublishFailed = "Failed to publish drop event"
)
