package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. Category links live in the
// 'product_categories' join table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_products_name_shop"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount    int             `gorm:"not null;default:0;check:chk_products_discount,discount >= 0 AND discount <= 100"`
	Description string          `gorm:"type:text;not null;default:''"`
	Image       string          `gorm:"type:varchar(512);not null;default:''"`
	AddedAt     time.Time       `gorm:"not null"`
	ShopID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_products_name_shop"`

	Shop       *ShopModel      `gorm:"foreignKey:ShopID;constraint:OnDelete:RESTRICT"`
	Categories []CategoryModel `gorm:"many2many:product_categories;joinForeignKey:ProductID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductCategoriesTable is the join table between products and categories.
const ProductCategoriesTable = "product_categories"

// ProductCategoryModel maps a row of the join table behind ProductModel.Categories.
// The table is created with ProductModel, so it is not migrated on its own.
type ProductCategoryModel struct {
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (ProductCategoryModel) TableName() string {
	return ProductCategoriesTable
}

// CartItemModel mirrors the 'cart_items' table. A user has one row per product.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_user_product"`
	Quantity  int       `gorm:"not null;default:1"`
	AddedAt   time.Time `gorm:"not null"`

	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
