package models

// All 返回需要建表的模型，顺序即建表顺序
func All() []interface{} {
	return []interface{}{
		&Brand{},
		&Owner{},
		&Car{},
	}
}
