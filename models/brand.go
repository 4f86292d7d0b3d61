package models

// Brand 品牌模型
type Brand struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"column:name;type:varchar(255);not null"`
}

// BrandInput 品牌写入参数，nil 字段表示不修改
type BrandInput struct {
	Name *string
}

// Apply 将参数写入品牌
func (in BrandInput) Apply(b *Brand) {
	if in.Name != nil {
		b.Name = *in.Name
	}
}

// Columns 返回需要更新的列
func (in BrandInput) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	return cols
}
