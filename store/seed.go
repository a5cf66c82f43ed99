package store

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quickcart/models"
)

// ts parses a fixture timestamp. Fixtures are compile-time constants, so a
// parse failure is a programming error.
func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Fatalf("bad seed timestamp %q: %v", s, err)
	}
	return t
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func timePtr(s string) *time.Time {
	t := ts(s)
	return &t
}

func hashPassword(plain string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}
	return string(h)
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:          1,
			Name:        "Bose QuietComfort 45 Headphones",
			Description: "High-quality wireless headphones with noise cancellation and premium sound quality. Perfect for music lovers and professionals.",
			Price:       329.99,
			OfferPrice:  299.99,
			Category:    "Headphones",
			CategoryID:  intPtr(1),
			Image:       []string{"/images/bose_headphone_image.png", "/images/header_headphone_image.png"},
			Brand:       "Bose",
			InStock:     true,
			Quantity:    50,
			Ratings:     4.5,
			Reviews:     128,
			Tags:        []string{"wireless", "bluetooth", "noise-cancellation", "premium"},
			Specifications: map[string]string{
				"batteryLife":  "24 hours",
				"connectivity": "Bluetooth 5.1",
				"weight":       "240g",
				"warranty":     "2 years",
			},
			CreatedAt: ts("2024-01-15T10:00:00Z"),
			UpdatedAt: ts("2024-01-20T14:30:00Z"),
		},
		{
			ID:          2,
			Name:        "ASUS Gaming Laptop",
			Description: "High-performance gaming laptop with advanced graphics and fast processor. Ideal for gaming and professional work.",
			Price:       1299.99,
			OfferPrice:  1199.99,
			Category:    "Laptops",
			CategoryID:  intPtr(2),
			Image:       []string{"/images/asus_laptop_image.png", "/images/macbook_image.png"},
			Brand:       "ASUS",
			InStock:     true,
			Quantity:    25,
			Ratings:     4.7,
			Reviews:     89,
			Tags:        []string{"gaming", "laptop", "high-performance", "asus"},
			Specifications: map[string]string{
				"processor": "Intel i7-12700H",
				"ram":       "16GB DDR4",
				"storage":   "512GB SSD",
				"graphics":  "RTX 3060",
				"display":   `15.6" FHD 144Hz`,
			},
			CreatedAt: ts("2024-01-10T08:00:00Z"),
			UpdatedAt: ts("2024-01-25T16:45:00Z"),
		},
		{
			ID:          3,
			Name:        "PlayStation 5 Controller",
			Description: "Professional wireless gaming controller with precision controls and long battery life. Compatible with PC and PlayStation 5.",
			Price:       79.99,
			OfferPrice:  59.99,
			Category:    "Gaming",
			CategoryID:  intPtr(3),
			Image:       []string{"/images/md_controller_image.png", "/images/sm_controller_image.png"},
			Brand:       "Sony",
			InStock:     true,
			Quantity:    100,
			Ratings:     4.3,
			Reviews:     256,
			Tags:        []string{"gaming", "controller", "wireless", "ps5", "sony"},
			Specifications: map[string]string{
				"connectivity":  "Bluetooth/USB-C",
				"batteryLife":   "12 hours",
				"compatibility": "PC, PlayStation 5",
				"weight":        "280g",
			},
			CreatedAt: ts("2024-01-05T12:00:00Z"),
			UpdatedAt: ts("2024-01-22T09:15:00Z"),
		},
		{
			ID:          4,
			Name:        "Canon Professional Camera",
			Description: "Professional DSLR camera with high resolution and advanced features. Perfect for photography and videography.",
			Price:       899.99,
			OfferPrice:  799.99,
			Category:    "Cameras",
			CategoryID:  intPtr(4),
			Image:       []string{"/images/cannon_camera_image.png"},
			Brand:       "Canon",
			InStock:     true,
			Quantity:    30,
			Ratings:     4.8,
			Reviews:     67,
			Tags:        []string{"camera", "dslr", "professional", "photography"},
			Specifications: map[string]string{
				"resolution":     "24.2 MP",
				"videoRecording": "4K @ 30fps",
				"lensMount":      "EF/EF-S",
				"batteryLife":    "600 shots",
			},
			CreatedAt: ts("2024-01-12T14:30:00Z"),
			UpdatedAt: ts("2024-01-18T11:20:00Z"),
		},
		{
			ID:          5,
			Name:        "Apple AirPods Pro",
			Description: "Premium wireless earphones with active noise cancellation and spatial audio. Designed for superior sound experience.",
			Price:       249.99,
			OfferPrice:  199.99,
			Category:    "Earphones",
			CategoryID:  intPtr(5),
			Image: []string{
				"/images/apple_earphone_image.png",
				"/images/product_details_page_apple_earphone_image1.png",
				"/images/product_details_page_apple_earphone_image2.png",
			},
			Brand:    "Apple",
			InStock:  true,
			Quantity: 75,
			Ratings:  4.6,
			Reviews:  234,
			Tags:     []string{"apple", "airpods", "wireless", "noise-cancellation"},
			Specifications: map[string]string{
				"batteryLife":   "6 hours + 24 hours with case",
				"connectivity":  "Bluetooth 5.0",
				"features":      "Active Noise Cancellation",
				"compatibility": "iPhone, iPad, Mac",
			},
			CreatedAt: ts("2024-01-08T16:45:00Z"),
			UpdatedAt: ts("2024-01-24T13:10:00Z"),
		},
		{
			ID:          6,
			Name:        "Samsung Galaxy S23",
			Description: "Latest flagship smartphone with advanced camera system and powerful performance for all your daily needs.",
			Price:       899.99,
			OfferPrice:  799.99,
			Category:    "Smartphones",
			CategoryID:  intPtr(6),
			Image:       []string{"/images/samsung_s23phone_image.png"},
			Brand:       "Samsung",
			InStock:     true,
			Quantity:    45,
			Ratings:     4.4,
			Reviews:     156,
			Tags:        []string{"samsung", "smartphone", "flagship", "android"},
			Specifications: map[string]string{
				"display":   `6.1" Dynamic AMOLED`,
				"processor": "Snapdragon 8 Gen 2",
				"camera":    "50MP Triple Camera",
				"storage":   "256GB",
			},
			CreatedAt: ts("2024-01-14T12:00:00Z"),
			UpdatedAt: ts("2024-01-26T15:30:00Z"),
		},
		{
			ID:          7,
			Name:        "JBL Bluetooth Speaker",
			Description: "Portable Bluetooth speaker with powerful sound and long battery life. Perfect for outdoor activities and parties.",
			Price:       129.99,
			OfferPrice:  99.99,
			Category:    "Audio",
			CategoryID:  intPtr(7),
			Image:       []string{"/images/jbl_soundbox_image.png"},
			Brand:       "JBL",
			InStock:     true,
			Quantity:    60,
			Ratings:     4.2,
			Reviews:     98,
			Tags:        []string{"jbl", "speaker", "bluetooth", "portable"},
			Specifications: map[string]string{
				"batteryLife":  "20 hours",
				"waterproof":   "IPX7",
				"connectivity": "Bluetooth 5.1",
				"power":        "40W",
			},
			CreatedAt: ts("2024-01-16T09:30:00Z"),
			UpdatedAt: ts("2024-01-28T11:45:00Z"),
		},
	}
}

func seedCategories() []models.Category {
	mk := func(id int, name, description, slug, image string, sortOrder int, updatedAt string) models.Category {
		return models.Category{
			ID:           id,
			Name:         name,
			Description:  description,
			Slug:         slug,
			Image:        image,
			ParentID:     nil,
			IsActive:     true,
			SortOrder:    sortOrder,
			ProductCount: 1,
			CreatedAt:    ts("2024-01-01T00:00:00Z"),
			UpdatedAt:    ts(updatedAt),
		}
	}
	return []models.Category{
		mk(1, "Headphones", "Premium wireless and wired headphones with noise cancellation and superior sound quality", "headphones", "/images/category-headphones.jpg", 1, "2024-01-20T10:30:00Z"),
		mk(2, "Laptops", "High-performance laptops for gaming, work, and everyday use", "laptops", "/images/category-laptops.jpg", 2, "2024-01-18T14:15:00Z"),
		mk(3, "Gaming", "Gaming controllers, accessories, and gaming-related products", "gaming", "/images/category-gaming.jpg", 3, "2024-01-22T16:45:00Z"),
		mk(4, "Cameras", "Professional DSLR and digital cameras with advanced photography features", "cameras", "/images/category-cameras.jpg", 4, "2024-01-25T09:30:00Z"),
		mk(5, "Earphones", "Wireless earphones and earbuds with premium sound quality and noise cancellation", "earphones", "/images/category-earphones.jpg", 5, "2024-01-28T11:15:00Z"),
		mk(6, "Smartphones", "Latest flagship smartphones with advanced features and powerful performance", "smartphones", "/images/category-smartphones.jpg", 6, "2024-01-30T14:20:00Z"),
		mk(7, "Audio", "Portable speakers, sound systems and audio equipment for music lovers", "audio", "/images/category-audio.jpg", 7, "2024-02-01T16:45:00Z"),
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:       1,
			Name:     "Admin User",
			Email:    "admin@ecommerce.com",
			Password: hashPassword("admin123"),
			Role:     "admin",
			Avatar:   "/images/admin-avatar.jpg",
			Phone:    "+1234567890",
			Address: models.Address{
				Street:  "123 Admin Street",
				City:    "Tech City",
				State:   "California",
				ZipCode: "90210",
				Country: "USA",
			},
			IsActive:        true,
			IsEmailVerified: true,
			Preferences:     models.Preferences{Newsletter: true, Notifications: true, Language: "en"},
			Cart:            []models.CartItem{},
			CreatedAt:       ts("2024-01-01T00:00:00Z"),
			LastLogin:       timePtr("2024-01-25T10:30:00Z"),
		},
		{
			ID:       2,
			Name:     "John Smith",
			Email:    "john.smith@email.com",
			Password: hashPassword("user123"),
			Role:     "customer",
			Avatar:   "/images/user-avatar-1.jpg",
			Phone:    "+1987654321",
			Address: models.Address{
				Street:  "456 Oak Avenue",
				City:    "Springfield",
				State:   "Illinois",
				ZipCode: "62701",
				Country: "USA",
			},
			IsActive:        true,
			IsEmailVerified: true,
			Preferences:     models.Preferences{Newsletter: true, Notifications: false, Language: "en"},
			Cart:            []models.CartItem{},
			CreatedAt:       ts("2024-01-10T08:15:00Z"),
			LastLogin:       timePtr("2024-01-24T16:45:00Z"),
		},
		{
			ID:       3,
			Name:     "Sarah Johnson",
			Email:    "sarah.johnson@email.com",
			Password: hashPassword("user456"),
			Role:     "customer",
			Avatar:   "/images/user-avatar-2.jpg",
			Phone:    "+1555123456",
			Address: models.Address{
				Street:  "789 Pine Street",
				City:    "Portland",
				State:   "Oregon",
				ZipCode: "97201",
				Country: "USA",
			},
			IsActive:        true,
			IsEmailVerified: false,
			Preferences:     models.Preferences{Newsletter: false, Notifications: true, Language: "en"},
			Cart:            []models.CartItem{},
			CreatedAt:       ts("2024-01-15T12:30:00Z"),
			LastLogin:       timePtr("2024-01-23T14:20:00Z"),
		},
		{
			ID:       4,
			Name:     "Seller Pro",
			Email:    "seller@marketplace.com",
			Password: hashPassword("seller123"),
			Role:     "seller",
			Avatar:   "/images/seller-avatar.jpg",
			Phone:    "+1444555666",
			Address: models.Address{
				Street:  "321 Business Blvd",
				City:    "Commerce City",
				State:   "Colorado",
				ZipCode: "80022",
				Country: "USA",
			},
			IsActive:        true,
			IsEmailVerified: true,
			Preferences:     models.Preferences{Newsletter: true, Notifications: true, Language: "en"},
			BusinessInfo: &models.BusinessInfo{
				BusinessName: "Pro Electronics Store",
				BusinessType: "Electronics Retailer",
				TaxID:        "123456789",
				Website:      "https://proelectronics.com",
			},
			Cart:      []models.CartItem{},
			CreatedAt: ts("2024-01-05T14:00:00Z"),
			LastLogin: timePtr("2024-01-25T09:15:00Z"),
		},
	}
}

func seedOrders() []models.Order {
	johnAddr := models.OrderAddress{
		FullName: "John Smith",
		Street:   "456 Oak Avenue",
		City:     "Springfield",
		State:    "Illinois",
		ZipCode:  "62701",
		Country:  "USA",
		Phone:    "+1987654321",
	}
	sarahAddr := models.OrderAddress{
		FullName: "Sarah Johnson",
		Street:   "789 Pine Street",
		City:     "Portland",
		State:    "Oregon",
		ZipCode:  "97201",
		Country:  "USA",
		Phone:    "+1555123456",
	}
	return []models.Order{
		{
			ID:              1,
			UserID:          2,
			OrderNumber:     "ORD-2024-001",
			Status:          models.OrderDelivered,
			TotalAmount:     359.98,
			Subtotal:        329.98,
			Tax:             26.40,
			ShippingFee:     0,
			Discount:        0,
			PaymentMethod:   "credit_card",
			PaymentStatus:   "paid",
			ShippingAddress: johnAddr,
			BillingAddress:  johnAddr,
			Items: []models.OrderItem{
				{ProductID: 1, ProductName: "Premium Wireless Headphones", Price: 249.99, Quantity: 1, Total: 249.99},
				{ProductID: 4, ProductName: "4K Webcam Ultra", Price: 119.99, Quantity: 1, Total: 119.99},
			},
			OrderDate:        ts("2024-01-20T10:30:00Z"),
			ExpectedDelivery: ts("2024-01-25T00:00:00Z"),
			DeliveredDate:    timePtr("2024-01-24T14:20:00Z"),
			TrackingNumber:   strPtr("TRK123456789"),
			Notes:            "Leave at front door if not home",
		},
		{
			ID:              2,
			UserID:          3,
			OrderNumber:     "ORD-2024-002",
			Status:          models.OrderShipped,
			TotalAmount:     1279.98,
			Subtotal:        1199.99,
			Tax:             96.00,
			ShippingFee:     15.99,
			Discount:        32.00,
			PaymentMethod:   "paypal",
			PaymentStatus:   "paid",
			ShippingAddress: sarahAddr,
			BillingAddress:  sarahAddr,
			Items: []models.OrderItem{
				{ProductID: 2, ProductName: "Gaming Laptop Pro", Price: 1199.99, Quantity: 1, Total: 1199.99},
			},
			OrderDate:        ts("2024-01-22T16:45:00Z"),
			ExpectedDelivery: ts("2024-01-28T00:00:00Z"),
			TrackingNumber:   strPtr("TRK987654321"),
			Notes:            "Signature required upon delivery",
		},
		{
			ID:              3,
			UserID:          2,
			OrderNumber:     "ORD-2024-003",
			Status:          models.OrderProcessing,
			TotalAmount:     219.98,
			Subtotal:        219.98,
			Tax:             17.60,
			ShippingFee:     0,
			Discount:        17.60,
			PaymentMethod:   "credit_card",
			PaymentStatus:   "paid",
			ShippingAddress: johnAddr,
			BillingAddress:  johnAddr,
			Items: []models.OrderItem{
				{ProductID: 3, ProductName: "Wireless Gaming Controller", Price: 59.99, Quantity: 2, Total: 119.98},
				{ProductID: 5, ProductName: "Mechanical Keyboard RGB", Price: 159.99, Quantity: 1, Total: 159.99},
			},
			OrderDate:        ts("2024-01-24T09:15:00Z"),
			ExpectedDelivery: ts("2024-01-30T00:00:00Z"),
			Notes:            "",
		},
		{
			ID:              4,
			UserID:          3,
			OrderNumber:     "ORD-2024-004",
			Status:          models.OrderPending,
			TotalAmount:     79.99,
			Subtotal:        59.99,
			Tax:             4.80,
			ShippingFee:     15.20,
			Discount:        0,
			PaymentMethod:   "bank_transfer",
			PaymentStatus:   "pending",
			ShippingAddress: sarahAddr,
			BillingAddress:  sarahAddr,
			Items: []models.OrderItem{
				{ProductID: 3, ProductName: "Wireless Gaming Controller", Price: 59.99, Quantity: 1, Total: 59.99},
			},
			OrderDate:        ts("2024-01-25T11:30:00Z"),
			ExpectedDelivery: ts("2024-02-01T00:00:00Z"),
			Notes:            "Please call before delivery",
		},
	}
}
