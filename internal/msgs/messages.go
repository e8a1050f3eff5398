package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgMessageSent             = "message sent successfully"
	MsgMessageMarkedAsRead     = "message marked as read"
)
