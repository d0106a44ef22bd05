package model

// MessageRole 对话消息角色
type MessageRole string

const (
	RoleMessageUser      MessageRole = "user"
	RoleMessageAssistant MessageRole = "assistant"
)

// Message 教练对话的持久化消息
// swagger:model Message
type Message struct {
	BaseModel
	UserID uint        `gorm:"index;type:bigint unsigned;not null" json:"user_id"`
	Role   MessageRole `gorm:"type:enum('user','assistant');not null" json:"role"`
	Text   string      `gorm:"type:text;not null" json:"text"`
}

func (Message) TableName() string {
	return "messages"
}
