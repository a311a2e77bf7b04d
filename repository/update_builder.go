package repository

// productUpdate 累積要更新的欄位與值，最後交給gorm組成參數化的UPDATE
type productUpdate struct {
	values map[string]interface{}
}

func newProductUpdate() *productUpdate {
	return &productUpdate{values: make(map[string]interface{})}
}

// Set 設定欄位，同一欄位重複設定時保留第一次的值
func (u *productUpdate) Set(column string, value interface{}) {
	if u.Has(column) {
		return
	}
	u.values[column] = value
}

func (u *productUpdate) Has(column string) bool {
	_, ok := u.values[column]
	return ok
}

func (u *productUpdate) Assignments() map[string]interface{} {
	return u.values
}
