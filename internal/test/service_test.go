package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/ReceiptProcessor/internal"
	mock_internal "github.com/DrGermanius/ReceiptProcessor/internal/mock"
)

var _ = Describe("Service", func() {
	var (
		srv internal.IService
		rep *mock_internal.MockIRepository
		ctx context.Context
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		rep = mock_internal.NewMockIRepository(ctrl)
		srv = internal.NewService(rep, logger.Sugar())
		ctx = context.Background()
	})
	Context("Service tests", func() {
		It("ProcessReceipt without error", func() {
			var saved string
			rep.EXPECT().SavePoints(ctx, gomock.Any(), 109).DoAndReturn(
				func(_ context.Context, id string, _ int) error {
					saved = id
					return nil
				})

			id, err := srv.ProcessReceipt(ctx, marketReceipt().bytes())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(id).Should(Equal(saved))

			_, err = uuid.Parse(id)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("ProcessReceipt generates a fresh id per receipt", func() {
			ids := map[string]struct{}{}
			rep.EXPECT().SavePoints(ctx, gomock.Any(), 28).Times(3).DoAndReturn(
				func(_ context.Context, id string, _ int) error {
					ids[id] = struct{}{}
					return nil
				})

			for i := 0; i < 3; i++ {
				_, err := srv.ProcessReceipt(ctx, targetReceipt().bytes())
				Expect(err).ShouldNot(HaveOccurred())
			}
			Expect(ids).Should(HaveLen(3))
		})
		It("ProcessReceipt with error invalid receipt", func() {
			_, err := srv.ProcessReceipt(ctx, marketReceipt().with("total", "9.01").bytes())
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrReceiptInvalid)).Should(BeTrue())
		})
		It("ProcessReceipt with error from repository", func() {
			e := errors.New("some error")
			rep.EXPECT().SavePoints(ctx, gomock.Any(), 109).Return(e)

			_, err := srv.ProcessReceipt(ctx, marketReceipt().bytes())
			Expect(err).Should(Equal(e))
		})
		It("GetPoints without error", func() {
			rep.EXPECT().GetPoints(ctx, "id").Return(28, nil)

			points, err := srv.GetPoints(ctx, "id")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(points).Should(Equal(28))
		})
		It("GetPoints with error not found", func() {
			rep.EXPECT().GetPoints(ctx, "id").Return(0, internal.ErrNotFound)

			_, err := srv.GetPoints(ctx, "id")
			Expect(err).Should(Equal(internal.ErrNotFound))
		})
	})
})
