package shop

import "haven/internal/entities"

func ToDomain(s *ShopDB) *entities.Shop {
	if s == nil {
		return nil
	}

	return &entities.Shop{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt,
	}
}

func ToDomainList(shopsDB []ShopDB) []entities.Shop {
	if len(shopsDB) == 0 {
		return []entities.Shop{}
	}

	result := make([]entities.Shop, len(shopsDB))
	for i, shopDB := range shopsDB {
		result[i] = *ToDomain(&shopDB)
	}
	return result
}
