package models

// MenuCatalog is the reference menu. Prices are in pesos. The per-item
// ingredient lists are the authoritative availability inputs; the keyword
// resolver used at acceptance time is kept separately in the order service.
var MenuCatalog = []MenuItem{
	// Burgers
	{ID: 1, Name: "CDO Burger", Price: 27, Category: "Burgers", Description: "Classic burger with our signature patty", Ingredients: []string{"Patty", "Bun"}},
	{ID: 2, Name: "Burger with Ham", Price: 36, Category: "Burgers", Description: "Juicy burger topped with savory ham", Ingredients: []string{"Patty", "Ham", "Bun"}},
	{ID: 3, Name: "Burger with Egg", Price: 37, Category: "Burgers", Description: "Burger with a perfectly fried egg", Ingredients: []string{"Patty", "Egg", "Bun"}},
	{ID: 4, Name: "Burger with Bacon", Price: 42, Category: "Burgers", Description: "Crispy bacon makes this burger special", Ingredients: []string{"Patty", "Bacon", "Bun"}},
	{ID: 5, Name: "Cheese Burger", Price: 35, Category: "Burgers", Description: "Melted cheese perfection", Ingredients: []string{"Patty", "Cheese", "Bun"}},
	{ID: 6, Name: "Cheese Burger with Ham", Price: 41, Category: "Burgers", Description: "Cheese and ham combo", Ingredients: []string{"Patty", "Cheese", "Ham", "Bun"}},
	{ID: 7, Name: "Cheese Burger with Egg", Price: 43, Category: "Burgers", Description: "Cheese and egg delight", Ingredients: []string{"Patty", "Cheese", "Egg", "Bun"}},
	{ID: 8, Name: "Cheese Burger with Bacon", Price: 47, Category: "Burgers", Description: "Triple threat: cheese, bacon, and patty", Ingredients: []string{"Patty", "Cheese", "Bacon", "Bun"}},
	{ID: 9, Name: "Ham Burger", Price: 29, Category: "Burgers", Description: "Simple and delicious ham burger", Ingredients: []string{"Ham", "Bun", "Patty"}},
	{ID: 10, Name: "Ham Burger with Cheese", Price: 36, Category: "Burgers", Description: "Ham and cheese classic", Ingredients: []string{"Ham", "Cheese", "Bun", "Patty"}},
	{ID: 11, Name: "Ham Burger with Egg", Price: 34, Category: "Burgers", Description: "Ham and egg breakfast style", Ingredients: []string{"Ham", "Egg", "Bun", "Patty"}},
	{ID: 12, Name: "Hamburger With Cheese and Egg", Price: 48, Category: "Burgers", Description: "Loaded with ham, cheese, and egg", Ingredients: []string{"Ham", "Cheese", "Egg", "Bun", "Patty"}},
	{ID: 13, Name: "Burger Bacon Ham", Price: 52, Category: "Burgers", Description: "Bacon and ham power combo", Ingredients: []string{"Patty", "Bacon", "Ham", "Bun"}},
	{ID: 24, Name: "Complete", Price: 64, Category: "Burgers", Tag: "SIGNATURE", Description: "Our signature burger with everything!", Ingredients: []string{"Patty", "Cheese", "Ham", "Egg", "Bun"}},
	{ID: 25, Name: "Complete change Bacon", Price: 62, Category: "Burgers", Description: "Complete burger, bacon style", Ingredients: []string{"Patty", "Cheese", "Bacon", "Egg", "Bun"}},
	{ID: 26, Name: "Complete with Bacon", Price: 67, Category: "Burgers", Description: "The ultimate burger experience", Ingredients: []string{"Patty", "Cheese", "Ham", "Bacon", "Egg", "Bun"}},

	// Sandwiches
	{ID: 14, Name: "Egg Cheese", Price: 38, Category: "Sandwiches", Description: "Egg and cheese sandwich", Ingredients: []string{"Egg", "Cheese", "Bun"}},
	{ID: 15, Name: "Egg Sandwich", Price: 30, Category: "Sandwiches", Description: "Simple egg sandwich", Ingredients: []string{"Egg", "Bun"}},
	{ID: 16, Name: "Bacon Sandwich", Price: 40, Category: "Sandwiches", Description: "Crispy bacon sandwich", Ingredients: []string{"Bacon", "Bun"}},
	{ID: 19, Name: "Bacon with Ham", Price: 48, Category: "Sandwiches", Description: "Bacon and ham combo", Ingredients: []string{"Bacon", "Ham", "Bun"}},
	{ID: 20, Name: "Bacon with Egg", Price: 49, Category: "Sandwiches", Description: "Bacon and egg classic", Ingredients: []string{"Bacon", "Egg", "Bun"}},
	{ID: 21, Name: "Bacon with Cheese", Price: 51, Category: "Sandwiches", Description: "Bacon and cheese delight", Ingredients: []string{"Bacon", "Cheese", "Bun"}},
	{ID: 22, Name: "Bacon Cheese with Ham", Price: 52, Category: "Sandwiches", Description: "Loaded bacon sandwich", Ingredients: []string{"Bacon", "Cheese", "Ham", "Bun"}},
	{ID: 23, Name: "Bacon Cheese With Egg", Price: 54, Category: "Sandwiches", Description: "Bacon, cheese, and egg combo", Ingredients: []string{"Bacon", "Cheese", "Egg", "Bun"}},

	// Hot Dogs
	{ID: 27, Name: "1/2 Long", Price: 30, Category: "Hot Dogs", Description: "Half-size hot dog", Ingredients: []string{"Hotdog", "Bun"}},
	{ID: 28, Name: "1/2 Long Cheese", Price: 37, Category: "Hot Dogs", Description: "Half-size with cheese", Ingredients: []string{"Hotdog", "Cheese", "Bun"}},
	{ID: 29, Name: "1/2 Long Bacon", Price: 43, Category: "Hot Dogs", Description: "Half-size with bacon", Ingredients: []string{"Hotdog", "Bacon", "Bun"}},
	{ID: 30, Name: "1/2 Long Ham", Price: 42, Category: "Hot Dogs", Description: "Half-size with ham", Ingredients: []string{"Hotdog", "Ham", "Bun"}},
	{ID: 31, Name: "1/2 Long Egg", Price: 44, Category: "Hot Dogs", Description: "Half-size with egg", Ingredients: []string{"Hotdog", "Egg", "Bun"}},
	{ID: 32, Name: "1/2 Long Bacon Cheese", Price: 53, Category: "Hot Dogs", Description: "Half-size loaded", Ingredients: []string{"Hotdog", "Bacon", "Cheese", "Bun"}},
	{ID: 33, Name: "Footlong", Price: 47, Category: "Hot Dogs", Description: "Full-size hot dog", Ingredients: []string{"Footlong", "Bun"}},
	{ID: 34, Name: "Footlong Ham", Price: 53, Category: "Hot Dogs", Description: "Footlong with ham", Ingredients: []string{"Footlong", "Ham", "Bun"}},
	{ID: 35, Name: "Footlong Egg Cheese", Price: 58, Category: "Hot Dogs", Description: "Footlong with egg and cheese", Ingredients: []string{"Footlong", "Egg", "Cheese", "Bun"}},
	{ID: 36, Name: "Footlong Cheese", Price: 56, Category: "Hot Dogs", Description: "Footlong with cheese", Ingredients: []string{"Footlong", "Cheese", "Bun"}},
	{ID: 37, Name: "Footlong Bacon", Price: 64, Category: "Hot Dogs", Description: "Footlong with bacon", Ingredients: []string{"Footlong", "Bacon", "Bun"}},
	{ID: 38, Name: "Footlong Cheese with Bacon", Price: 77, Category: "Hot Dogs", Description: "Ultimate footlong", Ingredients: []string{"Footlong", "Cheese", "Bacon", "Bun"}},
	{ID: 39, Name: "Footlong Ham with Bacon", Price: 77, Category: "Hot Dogs", Description: "Footlong ham and bacon", Ingredients: []string{"Footlong", "Ham", "Bacon", "Bun"}},

	// Rice Meals
	{ID: 40, Name: "Siomai Rice", Price: 40, Category: "Rice Meals", Description: "Siomai with steamed rice", Ingredients: []string{"Siomai", "Rice"}},
	{ID: 41, Name: "Ham Rice", Price: 25, Category: "Rice Meals", Description: "Ham with steamed rice", Ingredients: []string{"Ham", "Rice"}},
	{ID: 42, Name: "Egg Rice", Price: 30, Category: "Rice Meals", Description: "Egg with steamed rice", Ingredients: []string{"Egg", "Rice"}},
	{ID: 43, Name: "Hotdog Rice", Price: 35, Category: "Rice Meals", Description: "Hotdog with steamed rice", Ingredients: []string{"Hotdog", "Rice"}},

	// Sides
	{ID: 17, Name: "4-pcs Grace Pork Siomai", Price: 25, Category: "Sides", Description: "Four pieces of pork siomai", Ingredients: []string{"Siomai"}},
	{ID: 18, Name: "Patty", Price: 15, Category: "Sides", Description: "Single burger patty", Ingredients: []string{"Patty"}},
	{ID: 44, Name: "Ham", Price: 12, Category: "Sides", Description: "Sliced ham", Ingredients: []string{"Ham"}},

	// Beverages
	{ID: 45, Name: "Mountain Dew", Price: 25, Category: "Beverages", Description: "Refreshing citrus soda", Ingredients: []string{"Softdrinks"}},
	{ID: 46, Name: "Pepsi", Price: 15, Category: "Beverages", Description: "Classic cola", Ingredients: []string{"Softdrinks"}},
	{ID: 47, Name: "Rootbeer", Price: 15, Category: "Beverages", Description: "Smooth rootbeer", Ingredients: []string{"Softdrinks"}},
}

// MenuCategories lists catalog categories in display order.
func MenuCategories() []string {
	return []string{"Burgers", "Sandwiches", "Hot Dogs", "Rice Meals", "Sides", "Beverages"}
}
