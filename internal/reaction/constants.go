package reaction

// Error context strings
const (
	ErrContextFailedToGetPost = "failed to get post"
	ErrContextFailedToGetDrop = "failed to get drop"
	ErrContextFailedToGetItem = "failed to get item"
	ErrContextFailedToBeginTx = "failed to begin reaction transaction"
	ErrContextFailedToConsume = "failed to consume drop"
	ErrContextFailedToAppend  = "failed to append reaction to post"
	ErrContextFailedToCredit  = "failed to credit experience"
	ErrContextFailedToCommit  = "failed to commit reaction transaction"
)

// Log messages
const (
	LogMsgReactionConsumed   = "Reaction consumed"
	LogMsgEventPublishFailed = "Failed to publish reaction event"
)
