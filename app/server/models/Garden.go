package models

type Garden struct {
	ID uint `gorm:"column:horta_id;primaryKey;autoIncrement"`

	Name   string `gorm:"column:nome_horta;not null"`       // 菜园名称
	UserID uint   `gorm:"column:usuario_id;not null;index"` // 所有者
	Photo  string `gorm:"column:foto;not null"`             // 照片路径，没有照片时为空字符串

	Species       string `gorm:"column:especie;not null"`       // 种植的品种
	DaysToHarvest int    `gorm:"column:dias_colheita;not null"` // 距离收获的天数，正整数

	ContactName  string `gorm:"column:contato;not null"`  // 联系人
	Address      string `gorm:"column:endereco;not null"` // 菜园地址
	ContactEmail string `gorm:"column:email;not null"`    // 联系邮箱

	// 连接模型时使用
	Owner *User `gorm:"foreignKey:UserID;references:ID"`
}

func (Garden) TableName() string {
	return "hortas"
}
