package models

// Owner 车主模型
type Owner struct {
	ID    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Email string `json:"email" gorm:"column:email;type:varchar(255);not null"`
}

// OwnerInput 车主写入参数，nil 字段表示不修改
type OwnerInput struct {
	Name  *string
	Email *string
}

// Apply 将参数写入车主
func (in OwnerInput) Apply(o *Owner) {
	if in.Name != nil {
		o.Name = *in.Name
	}
	if in.Email != nil {
		o.Email = *in.Email
	}
}

// Columns 返回需要更新的列
func (in OwnerInput) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if in.Name != nil {
		cols["name"] = *in.Name
	}
	if in.Email != nil {
		cols["email"] = *in.Email
	}
	return cols
}
