package recommend

import (
	"github.com/werbeauty/beauty-shop-backend/internal/catalog"
	"github.com/werbeauty/beauty-shop-backend/internal/cart"
	"github.com/werbeauty/beauty-shop-backend/internal/favorite"
	"github.com/werbeauty/beauty-shop-backend/internal/user"
)

// Service assembles a scoring Context from the user's session data and runs
// the engine over the catalog segment matching their shopping preference.
type Service struct {
	catalog   *catalog.Service
	users     *user.Service
	carts     *cart.Service
	favorites *favorite.Service
}

func NewService(c *catalog.Service, u *user.Service, carts *cart.Service, f *favorite.Service) *Service {
	return &Service{catalog: c, users: u, carts: carts, favorites: f}
}

// ForUser returns personalized recommendations for the authenticated user.
func (s *Service) ForUser(email string, limit int) ([]catalog.Product, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	segment := u.Gender
	if segment != catalog.SegmentMen {
		segment = catalog.SegmentWomen
	}
	candidates, err := s.catalog.List(segment)
	if err != nil {
		return nil, err
	}

	favoriteIDs, err := s.favorites.List(email)
	if err != nil {
		return nil, err
	}
	userCart, err := s.carts.GetCart(email)
	if err != nil {
		return nil, err
	}

	ctx := Context{
		ViewHistory: u.ViewHistory,
		FavoriteIDs: favoriteIDs,
		CartIDs:     userCart.ProductIDs(),
	}
	engine := NewEngine(s.catalog.ListAll())
	return engine.Recommend(candidates, ctx, limit), nil
}

// TrendingForSegment returns the most popular products of one segment.
func (s *Service) TrendingForSegment(segment string, limit int) ([]catalog.Product, error) {
	products, err := s.catalog.List(segment)
	if err != nil {
		return nil, err
	}
	return Trending(products, limit), nil
}

// SimilarTo lists products close to the reference product across both
// segments. Unknown ids yield an empty list, never an error.
func (s *Service) SimilarTo(productID string, limit int) []catalog.Product {
	all := s.catalog.ListAll()
	return NewEngine(all).Similar(all, productID, limit)
}

// AlsoBoughtWith lists complementary products for the reference product.
func (s *Service) AlsoBoughtWith(productID string, limit int) []catalog.Product {
	all := s.catalog.ListAll()
	return NewEngine(all).AlsoBought(all, productID, limit)
}
