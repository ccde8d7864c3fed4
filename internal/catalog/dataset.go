package catalog

import "github.com/Veraticus/axox-storefront/internal/model"

// DefaultProducts returns a fresh copy of the built-in AXOX product range.
func DefaultProducts() []model.Product {
	out := make([]model.Product, len(defaultProducts))
	for i, p := range defaultProducts {
		out[i] = p.Clone()
	}
	return out
}

var defaultProducts = []model.Product{
	{
		ID:          "ax-9000",
		Name:        "Treadmill AX-9000",
		Price:       12999,
		Category:    model.CategoryCardio,
		Type:        model.TypeHome,
		Image:       "/product_treadmill.jpg",
		Badge:       "Best Seller",
		Description: "Commercial-grade motor, responsive deck, and a console that keeps pace with your data.",
		Specs:       model.Specs{Motor: "3.5 HP", Speed: "0.8–20 km/h", Capacity: "150 kg", Warranty: "5 Years"},
		Highlights: []string{
			"Commercial-grade 3.5 HP motor",
			"Responsive shock-absorbing deck",
			"Advanced console with training programs",
			"Heart rate monitoring",
		},
		USPs: []string{"Free Installation", "5-Year Warranty", "Commercial Grade"},
	},
	{
		ID:          "ax-7000",
		Name:        "Treadmill AX-7000",
		Price:       8499,
		Category:    model.CategoryCardio,
		Type:        model.TypeHome,
		Image:       "/product_treadmill_ax7000.jpg",
		Description: "Powerful home treadmill with premium features at an accessible price point.",
		Specs:       model.Specs{Motor: "3.0 HP", Speed: "1–18 km/h", Capacity: "130 kg", Warranty: "3 Years"},
		Highlights: []string{
			"3.0 HP continuous duty motor",
			"12 preset workout programs",
			"Foldable design for easy storage",
			"Bluetooth connectivity",
		},
		USPs: []string{"Free Installation", "3-Year Warranty"},
	},
	{
		ID:          "ex-550",
		Name:        "Elliptical EX-550",
		Price:       7499,
		Category:    model.CategoryCardio,
		Type:        model.TypeHome,
		Image:       "/product_elliptical.jpg",
		Description: "Low-impact full-body workout with smooth magnetic resistance.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "135 kg", Warranty: "3 Years"},
		Highlights: []string{
			"20 levels of magnetic resistance",
			"Front-drive design for natural stride",
			"Dual-action handlebars",
			"Tablet holder included",
		},
		USPs: []string{"Free Installation", "3-Year Warranty"},
	},
	{
		ID:          "rx-200",
		Name:        "Rowing Machine RX-200",
		Price:       5999,
		Category:    model.CategoryCardio,
		Type:        model.TypeHome,
		Image:       "/product_rowing.jpg",
		Description: "Air resistance rowing machine for an authentic on-water feel.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "140 kg", Warranty: "3 Years"},
		Highlights: []string{
			"Air resistance with damper settings",
			"Performance monitor with PM5",
			"Foldable for storage",
			"Commercial-grade chain",
		},
		USPs: []string{"Free Installation", "3-Year Warranty"},
	},
	{
		ID:          "sx-300",
		Name:        "Spin Bike SX-300",
		Price:       4299,
		Category:    model.CategoryCardio,
		Type:        model.TypeHome,
		Image:       "/product_spinbike.jpg",
		Description: "Studio-quality spin bike for intense cardio sessions at home.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "125 kg", Warranty: "2 Years"},
		Highlights: []string{
			"Heavy 18kg flywheel",
			"Magnetic resistance system",
			"Fully adjustable seat and handlebars",
			"SPD-compatible pedals",
		},
		USPs: []string{"Free Installation", "2-Year Warranty"},
	},
	{
		ID:          "mx-800",
		Name:        "Multi Gym MX-800",
		Price:       14999,
		Category:    model.CategoryStrength,
		Type:        model.TypeCommercial,
		Image:       "/product_multigym.jpg",
		Description: "Complete home gym station with multiple exercise stations.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "200 kg", Warranty: "5 Years"},
		Highlights: []string{
			"Over 50 exercise options",
			"200 lb weight stack included",
			"Lat pulldown and low row station",
			"Leg developer attachment",
		},
		USPs: []string{"Commercial Grade", "5-Year Warranty", "Free Installation"},
	},
	{
		ID:          "cable-pro",
		Name:        "Cable Crossover Pro",
		Price:       8999,
		Category:    model.CategoryStrength,
		Type:        model.TypeCommercial,
		Image:       "/product_cable.jpg",
		Description: "Dual pulley cable system for functional training.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "180 kg", Warranty: "5 Years"},
		Highlights: []string{
			"Dual 160 lb weight stacks",
			"Adjustable pulley heights",
			"Multiple attachment points",
			"Commercial-grade cables",
		},
		USPs: []string{"Commercial Grade", "5-Year Warranty"},
	},
	{
		ID:          "leg-press-500",
		Name:        "Leg Press LP-500",
		Price:       6999,
		Category:    model.CategoryStrength,
		Type:        model.TypeCommercial,
		Image:       "/product_legpress.jpg",
		Description: "Plate-loaded leg press for serious lower body training.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "400 kg", Warranty: "5 Years"},
		Highlights: []string{
			"45-degree angle design",
			"Large footplate",
			"Safety lockout system",
			"Weight plate storage",
		},
		USPs: []string{"Commercial Grade", "5-Year Warranty"},
	},
	{
		ID:          "dumbbell-set",
		Name:        "Dumbbell Set 2–20 kg",
		Price:       2199,
		Category:    model.CategoryWeight,
		Type:        model.TypeHome,
		Image:       "/product_dumbbells.jpg",
		Description: "Complete rubber dumbbell set with storage rack.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "N/A", Warranty: "2 Years"},
		Highlights: []string{
			"10 pairs from 2-20kg",
			"Hexagonal design prevents rolling",
			"Rubber coating protects floors",
			"Steel rack included",
		},
		USPs: []string{"2-Year Warranty"},
	},
	{
		ID:          "bench-bx400",
		Name:        "Bench Press BX-400",
		Price:       3499,
		Category:    model.CategoryWeight,
		Type:        model.TypeHome,
		Image:       "/product_bench.jpg",
		Description: "Adjustable bench for flat, incline, and decline exercises.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "300 kg", Warranty: "3 Years"},
		Highlights: []string{
			"7 back pad positions",
			"4 seat positions",
			"Heavy-duty steel frame",
			"Transport wheels",
		},
		USPs: []string{"3-Year Warranty"},
	},
	{
		ID:          "kettlebell-set",
		Name:        "Kettlebell Set",
		Price:       1299,
		Category:    model.CategoryAccessories,
		Type:        model.TypeHome,
		Image:       "/product_kettlebell.jpg",
		Description: "Cast iron kettlebell set for functional training.",
		Specs:       model.Specs{Motor: "N/A", Speed: "N/A", Capacity: "N/A", Warranty: "2 Years"},
		Highlights: []string{
			"4 kettlebells: 4, 8, 12, 16 kg",
			"Cast iron construction",
			"Wide comfortable handles",
			"Flat base for stability",
		},
		USPs: []string{"2-Year Warranty"},
	},
}
