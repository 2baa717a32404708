package models

import "time"

// FeedPost 创建后不再修改
type FeedPost struct {
	ID uint `gorm:"column:feed_id;primaryKey;autoIncrement"`

	GardenID uint `gorm:"column:horta_id;not null;index"`   // 发布的菜园
	UserID   uint `gorm:"column:usuario_id;not null;index"` // 发布者

	Photo       string    `gorm:"column:foto;not null"`                // 发布时菜园照片路径的快照
	Description *string   `gorm:"column:descricao"`                    // 描述，可选
	PostedAt    time.Time `gorm:"column:data_postagem;not null;index"` // 发布时间，动态按此倒序

	// 连接模型时使用
	Garden *Garden `gorm:"foreignKey:GardenID;references:ID"`
	User   *User   `gorm:"foreignKey:UserID;references:ID"`
}

func (FeedPost) TableName() string {
	return "feed_hortas"
}

// FeedEntry 是动态列表的一行：帖子连接发布者和菜园
type FeedEntry struct {
	FeedID      uint      `gorm:"column:feed_id"`
	Photo       string    `gorm:"column:foto"`
	Description *string   `gorm:"column:descricao"`
	PostedAt    time.Time `gorm:"column:data_postagem"`
	UserName    string    `gorm:"column:nome"`
	GardenName  string    `gorm:"column:nome_horta"`
	Species     string    `gorm:"column:especie"`
}
