package domain

// Item is a single orderable dish. Price is in minor units.
type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// Category groups menu items as presented to the customer.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

var catalog = []Category{
	{
		ID:   "starters",
		Name: "Starters",
		Items: []Item{
			{ID: 1, Name: "Bruschetta", Description: "Toasted bread topped with tomatoes, garlic, and fresh basil.", Price: 829},
			{ID: 2, Name: "Calamari", Description: "Crispy fried squid served with lemon aioli.", Price: 1079},
			{ID: 3, Name: "Stuffed Mushrooms", Description: "Mushrooms filled with herb and garlic cream cheese.", Price: 995},
		},
	},
	{
		ID:   "mains",
		Name: "Main Courses",
		Items: []Item{
			{ID: 4, Name: "Filet Mignon", Description: "Premium beef tenderloin cooked to your preference, served with roasted vegetables.", Price: 2904},
			{ID: 5, Name: "Grilled Salmon", Description: "Fresh salmon grilled to perfection with lemon herb butter and seasonal vegetables.", Price: 2074},
			{ID: 6, Name: "Truffle Risotto", Description: "Creamy arborio rice with wild mushrooms, finished with truffle oil and parmesan.", Price: 1825},
		},
	},
	{
		ID:   "desserts",
		Name: "Desserts",
		Items: []Item{
			{ID: 7, Name: "Tiramisu", Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream.", Price: 829},
			{ID: 8, Name: "Chocolate Fondant", Description: "Warm chocolate cake with a molten center, served with vanilla ice cream.", Price: 1079},
			{ID: 9, Name: "Crème Brûlée", Description: "Rich vanilla custard with a caramelized sugar crust.", Price: 912},
		},
	},
	{
		ID:   "drinks",
		Name: "Drinks",
		Items: []Item{
			{ID: 10, Name: "Red Wine", Description: "Glass of premium house red wine.", Price: 746},
			{ID: 11, Name: "Craft Beer", Description: "Local craft beer, rotating selection.", Price: 580},
			{ID: 12, Name: "Signature Cocktail", Description: "House special craft cocktail with premium spirits.", Price: 1079},
		},
	},
}

// Catalog returns the full menu grouped by category.
func Catalog() []Category {
	return catalog
}

// FindItem looks up a menu item by id.
func FindItem(id int) (Item, bool) {
	for _, category := range catalog {
		for _, item := range category.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return Item{}, false
}
