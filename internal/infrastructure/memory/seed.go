package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// Datos semilla del servidor mock. Cada seed* devuelve copias frescas para
// que Reset no comparta memoria con estados anteriores.

func seedUsers() []*entity.User {
	return []*entity.User{
		{ID: 1, Name: "Alicia García", Email: "alicia@example.com", Phone: "+57 300 111 2233", Status: entity.UserStatusActive},
		{ID: 2, Name: "Bruno Díaz", Email: "bruno@example.com", Phone: "+57 300 222 3344", Status: entity.UserStatusActive},
		{ID: 3, Name: "Carla Méndez", Email: "carla@example.com", Phone: "", Status: entity.UserStatusInactive},
		{ID: 4, Name: "David Rojas", Email: "david@example.com", Phone: "+57 301 444 5566", Status: entity.UserStatusActive},
		{ID: 5, Name: "Elena Torres", Email: "elena@example.com", Phone: "", Status: entity.UserStatusPending},
		{ID: 6, Name: "Fabián Soto", Email: "fabian@example.com", Phone: "+57 302 666 7788", Status: entity.UserStatusActive},
		{ID: 7, Name: "Gloria Pardo", Email: "gloria@example.com", Phone: "", Status: entity.UserStatusActive},
	}
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "iPhone 15 Pro", Price: decimal.RequireFromString("8999.00"), Category: "smartphones", Stock: 50, Status: entity.ProductStatusOnSale},
		{ID: 2, Name: "Galaxy S24 Ultra", Price: decimal.RequireFromString("7999.00"), Category: "smartphones", Stock: 35, Status: entity.ProductStatusOnSale},
		{ID: 3, Name: "Xiaomi 14", Price: decimal.RequireFromString("4599.00"), Category: "smartphones", Stock: 0, Status: entity.ProductStatusOutOfStock},
		{ID: 4, Name: "MacBook Pro 14", Price: decimal.RequireFromString("14999.00"), Category: "laptops", Stock: 20, Status: entity.ProductStatusOnSale},
		{ID: 5, Name: "ThinkPad X1 Carbon", Price: decimal.RequireFromString("12499.00"), Category: "laptops", Stock: 8, Status: entity.ProductStatusOnSale},
		{ID: 6, Name: "AirPods Pro 2", Price: decimal.RequireFromString("1899.00"), Category: "accesorios", Stock: 120, Status: entity.ProductStatusOnSale},
		{ID: 7, Name: "Magic Mouse", Price: decimal.RequireFromString("699.00"), Category: "accesorios", Stock: 0, Status: entity.ProductStatusOffSale},
	}
}

func seedOrders() []*entity.Order {
	return []*entity.Order{
		{
			ID: "ORD20231201001", UserID: 1, ProductID: 1, Quantity: 1,
			Total:  decimal.RequireFromString("8999.00"),
			Status: entity.OrderStatusCompleted,
			CreatedAt: time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID: "ORD20231205002", UserID: 2, ProductID: 4, Quantity: 1,
			Total:  decimal.RequireFromString("14999.00"),
			Status: entity.OrderStatusPaid,
			CreatedAt: time.Date(2023, 12, 5, 15, 12, 0, 0, time.UTC),
		},
		{
			ID: "ORD20231210003", UserID: 1, ProductID: 6, Quantity: 2,
			Total:  decimal.RequireFromString("3798.00"),
			Status: entity.OrderStatusShipped,
			CreatedAt: time.Date(2023, 12, 10, 9, 5, 0, 0, time.UTC),
		},
		{
			ID: "ORD20231215004", UserID: 3, ProductID: 2, Quantity: 1,
			Total:  decimal.RequireFromString("7999.00"),
			Status: entity.OrderStatusPending,
			CreatedAt: time.Date(2023, 12, 15, 18, 40, 0, 0, time.UTC),
		},
	}
}

func seedAccounts() []*entity.Account {
	return []*entity.Account{
		{Username: "admin", Password: "admin123", Role: entity.RoleAdmin, Name: "Administrador"},
		{Username: "test", Password: "test123", Role: entity.RoleUser, Name: "Usuario de prueba"},
		{Username: "user1", Password: "123456", Role: entity.RoleUser, Name: "Usuario uno"},
		{Username: "user2", Password: "password", Role: entity.RoleUser, Name: "Usuario dos"},
		{Username: "vip", Password: "vip888", Role: entity.RoleVIP, Name: "Cliente VIP"},
	}
}
