package catalog

import "github.com/wheatandcat/KAWKAW/internal/domain"

// StaticCatalog serves the fixed product list shipped with the storefront.
// It implements domain.ProductCatalog. Rating and ReviewCount on the
// returned products are zero; callers merge live aggregates.
type StaticCatalog struct {
	byID  map[string]*domain.Product
	order []string
}

// New creates the static catalog
func New() *StaticCatalog {
	c := &StaticCatalog{byID: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		c.byID[p.ID] = &p
		c.order = append(c.order, p.ID)
	}
	return c
}

// GetByID returns the product with the given ID, or false if unknown
func (c *StaticCatalog) GetByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	clone := *p
	return &clone, true
}

// List returns every catalog product in display order
func (c *StaticCatalog) List() []*domain.Product {
	out := make([]*domain.Product, 0, len(c.order))
	for _, id := range c.order {
		clone := *c.byID[id]
		out = append(out, &clone)
	}
	return out
}

var products = []domain.Product{
	{
		ID:            "1",
		Name:          "ワイヤレスノイズキャンセリングヘッドホン",
		Price:         19800,
		OriginalPrice: 24800,
		Description:   "最大40時間再生のワイヤレスヘッドホン。アクティブノイズキャンセリング搭載。",
		Category:      "家電",
		Badge:         "セール",
		IconName:      "headphones",
	},
	{
		ID:          "2",
		Name:        "オーガニックコットンTシャツ",
		Price:       2980,
		Description: "肌ざわりのよいオーガニックコットン100%のベーシックTシャツ。",
		Category:    "ファッション",
		IconName:    "shirt",
	},
	{
		ID:          "3",
		Name:        "保湿美容液セット",
		Price:       5400,
		Description: "乾燥が気になる季節にうれしい、ヒアルロン酸配合の美容液3本セット。",
		Category:    "コスメ",
		IconName:    "droplets",
	},
	{
		ID:            "4",
		Name:          "ポータブルBluetoothスピーカー",
		Price:         6980,
		OriginalPrice: 8980,
		Description:   "防水IPX7対応。アウトドアでも使えるコンパクトスピーカー。",
		Category:      "家電",
		Badge:         "人気",
		IconName:      "radio",
	},
	{
		ID:          "5",
		Name:        "レザートートバッグ",
		Price:       12800,
		Description: "職人が仕立てた本革トートバッグ。A4サイズ対応。",
		Category:    "ファッション",
		IconName:    "shopping-bag",
	},
	{
		ID:          "6",
		Name:        "クッキー詰め合わせ",
		Price:       1980,
		Description: "バターの香り豊かな焼き菓子の詰め合わせ。ギフトにも。",
		Category:    "フード",
		IconName:    "cookie",
	},
	{
		ID:          "7",
		Name:        "高反発マットレス",
		Price:       29800,
		Description: "体圧分散に優れた高反発ウレタンマットレス。シングルサイズ。",
		Category:    "インテリア",
		IconName:    "bed-double",
	},
	{
		ID:            "8",
		Name:          "ランニングシューズ",
		Price:         9800,
		OriginalPrice: 12800,
		Description:   "軽量クッションソールで長距離ランも快適。",
		Category:      "スポーツ",
		Badge:         "セール",
		IconName:      "footprints",
	},
	{
		ID:          "9",
		Name:        "水彩絵の具24色セット",
		Price:       3200,
		Description: "発色のよい水彩絵の具。筆とパレット付き。",
		Category:    "ホビー",
		IconName:    "palette",
	},
	{
		ID:          "10",
		Name:        "マルチビタミンサプリ",
		Price:       2480,
		Description: "1日2粒で12種のビタミンを補給。約30日分。",
		Category:    "ヘルスケア",
		IconName:    "pill",
	},
	{
		ID:          "11",
		Name:        "スマートアラームクロック",
		Price:       4980,
		Description: "光で起こす目覚まし時計。スマホアプリ連携対応。",
		Category:    "家電",
		IconName:    "alarm-clock",
	},
	{
		ID:          "12",
		Name:        "クラフトコーラシロップ",
		Price:       1680,
		Description: "スパイスから仕込んだ無添加クラフトコーラの素。",
		Category:    "フード",
		Badge:       "新着",
		IconName:    "cup-soda",
	},
}
