package recipe

// sampleRecipes seed the catalog for demos and local development.
// Ingredients and instructions are JSON-encoded string arrays, the same
// shape the create endpoint accepts.
var sampleRecipes = []Recipe{
	{
		Title:       "Chocolate Lava Cake",
		Description: "A decadent chocolate cake with a molten center that oozes when you cut into it.",
		Ingredients: `["1/2 cup unsalted butter","4 oz dark chocolate (70% cocoa)","2 large eggs","2 large egg yolks","1/4 cup granulated sugar","1/4 cup all-purpose flour","1/4 tsp salt","1 tsp vanilla extract"]`,
		Instructions: `["Preheat oven to 425°F (220°C). Grease 4 ramekins with butter.","Melt butter and chocolate together in a double boiler until smooth.","In a separate bowl, whisk eggs, egg yolks, and sugar until pale and fluffy.","Fold the chocolate mixture into the egg mixture.","Gently fold in flour and salt until just combined.","Divide batter among ramekins and bake for 12-14 minutes.","Let cool for 1 minute, then invert onto plates and serve immediately."]`,
		PrepTime:    15,
		CookTime:    14,
		Servings:    4,
		Difficulty:  "medium",
		Category:    "chocolate",
		ImageURL:    "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=500",
	},
	{
		Title:       "Classic Vanilla Cupcakes",
		Description: "Light and fluffy vanilla cupcakes with a perfect crumb and sweet vanilla flavor.",
		Ingredients: `["1 1/2 cups all-purpose flour","1 1/2 tsp baking powder","1/4 tsp salt","1/2 cup unsalted butter, softened","1 cup granulated sugar","2 large eggs","1 tsp vanilla extract","1/2 cup whole milk"]`,
		Instructions: `["Preheat oven to 350°F (175°C). Line a muffin tin with cupcake liners.","Whisk together flour, baking powder, and salt in a medium bowl.","In a large bowl, cream butter and sugar until light and fluffy.","Add eggs one at a time, beating well after each addition.","Mix in vanilla extract.","Alternate adding flour mixture and milk, beginning and ending with flour.","Fill cupcake liners 2/3 full and bake for 18-20 minutes.","Cool completely before frosting."]`,
		PrepTime:    20,
		CookTime:    20,
		Servings:    12,
		Difficulty:  "easy",
		Category:    "cupcakes",
		ImageURL:    "https://images.unsplash.com/photo-1486427944299-d1955d23e34d?w=500",
	},
	{
		Title:       "Red Velvet Cake",
		Description: "A Southern classic with its signature red color and cream cheese frosting.",
		Ingredients: `["2 1/2 cups all-purpose flour","1 1/2 cups granulated sugar","1 tsp baking soda","1 tsp salt","1 tsp cocoa powder","1 1/2 cups vegetable oil","1 cup buttermilk","2 large eggs","2 tbsp red food coloring","1 tsp vanilla extract","1 tsp white vinegar"]`,
		Instructions: `["Preheat oven to 350°F (175°C). Grease and flour two 9-inch round cake pans.","Whisk together flour, sugar, baking soda, salt, and cocoa powder.","In a separate bowl, mix oil, buttermilk, eggs, food coloring, vanilla, and vinegar.","Add wet ingredients to dry ingredients and mix until just combined.","Divide batter between prepared pans and bake for 25-30 minutes.","Cool in pans for 10 minutes, then transfer to wire racks.","Frost with cream cheese frosting when completely cool."]`,
		PrepTime:    25,
		CookTime:    30,
		Servings:    12,
		Difficulty:  "medium",
		Category:    "layer",
		ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500",
	},
	{
		Title:       "Tiramisu",
		Description: "An Italian dessert with layers of coffee-soaked ladyfingers and creamy mascarpone filling.",
		Ingredients: `["6 large egg yolks","1 cup granulated sugar","1 1/4 cups mascarpone cheese","1 3/4 cups heavy whipping cream","2 packages ladyfinger cookies","1 cup strong brewed coffee, cooled","2 tbsp coffee liqueur (optional)","Unsweetened cocoa powder for dusting"]`,
		Instructions: `["In a heatproof bowl, whisk egg yolks and sugar over simmering water until pale and thick.","Remove from heat and whisk in mascarpone until smooth.","In a separate bowl, whip cream to stiff peaks.","Fold whipped cream into mascarpone mixture.","Mix coffee and liqueur in a shallow dish.","Quickly dip each ladyfinger in coffee mixture and arrange in a 9x13 dish.","Spread half the mascarpone mixture over ladyfingers.","Repeat with another layer of ladyfingers and remaining mascarpone mixture.","Cover and refrigerate for at least 4 hours or overnight.","Dust with cocoa powder before serving."]`,
		PrepTime:    30,
		CookTime:    0,
		Servings:    12,
		Difficulty:  "hard",
		Category:    "international",
		ImageURL:    "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=500",
	},
	{
		Title:       "Lemon Blueberry Cheesecake",
		Description: "A refreshing cheesecake with bright lemon flavor and fresh blueberries.",
		Ingredients: `["1 1/2 cups graham cracker crumbs","1/4 cup granulated sugar","1/3 cup melted butter","3 (8 oz) packages cream cheese, softened","1 cup granulated sugar","3 large eggs","1/4 cup fresh lemon juice","1 tbsp lemon zest","1 tsp vanilla extract","1 cup fresh blueberries","1/4 cup blueberry jam"]`,
		Instructions: `["Preheat oven to 325°F (165°C). Wrap a 9-inch springform pan with foil.","Mix graham cracker crumbs, sugar, and melted butter. Press into pan bottom.","Bake crust for 10 minutes, then cool.","Beat cream cheese and sugar until smooth.","Add eggs one at a time, then lemon juice, zest, and vanilla.","Pour filling over crust and bake for 45-50 minutes.","Cool completely, then refrigerate for at least 4 hours.","Top with fresh blueberries and warmed blueberry jam before serving."]`,
		PrepTime:    30,
		CookTime:    50,
		Servings:    12,
		Difficulty:  "medium",
		Category:    "cheesecake",
		ImageURL:    "https://images.unsplash.com/photo-1533134242443-d4fd215305ad?w=500",
	},
}

// SampleRecipes returns a fresh copy of the seed data so callers can set
// ownership without touching the shared slice.
func SampleRecipes() []Recipe {
	out := make([]Recipe, len(sampleRecipes))
	copy(out, sampleRecipes)
	return out
}
