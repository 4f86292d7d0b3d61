package models

// MinCarYear 汽车发明年份
const MinCarYear = 1886

// Car 汽车模型
type Car struct {
	ID      int    `json:"id" gorm:"primaryKey"`
	Model   string `json:"model" gorm:"column:model;type:varchar(255);not null"`
	Year    int    `json:"year" gorm:"column:year;not null"`
	BrandID int    `json:"brandId" gorm:"column:brand_id;not null;index"` // 关联brands表
	OwnerID int    `json:"ownerId" gorm:"column:owner_id;not null;index"` // 关联owners表

	// 关联关系，仅在查询时加载
	Brand *Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Owner *Owner `json:"owner,omitempty" gorm:"foreignKey:OwnerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// CarInput 汽车写入参数，nil 字段表示不修改
type CarInput struct {
	Model   *string
	Year    *int
	BrandID *int
	OwnerID *int
}

// Apply 将参数写入汽车
func (in CarInput) Apply(c *Car) {
	if in.Model != nil {
		c.Model = *in.Model
	}
	if in.Year != nil {
		c.Year = *in.Year
	}
	if in.BrandID != nil {
		c.BrandID = *in.BrandID
	}
	if in.OwnerID != nil {
		c.OwnerID = *in.OwnerID
	}
}

// Columns 返回需要更新的列
func (in CarInput) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if in.Model != nil {
		cols["model"] = *in.Model
	}
	if in.Year != nil {
		cols["year"] = *in.Year
	}
	if in.BrandID != nil {
		cols["brand_id"] = *in.BrandID
	}
	if in.OwnerID != nil {
		cols["owner_id"] = *in.OwnerID
	}
	return cols
}
