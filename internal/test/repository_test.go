package test

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/ReceiptProcessor/internal"
)

var _ = Describe("Repository", func() {
	var (
		repo *internal.Repository
		ctx  context.Context
	)
	BeforeEach(func() {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.NewRepository(logger.Sugar())
		ctx = context.Background()
	})
	Context("Repository tests", func() {
		It("SavePoints then GetPoints", func() {
			err := repo.SavePoints(ctx, "id", 28)
			Expect(err).ShouldNot(HaveOccurred())

			points, err := repo.GetPoints(ctx, "id")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(points).Should(Equal(28))
		})
		It("GetPoints with error not found", func() {
			_, err := repo.GetPoints(ctx, "missing")
			Expect(err).Should(Equal(internal.ErrNotFound))
		})
		It("SavePoints with error duplicate id", func() {
			Expect(repo.SavePoints(ctx, "id", 1)).To(Succeed())

			err := repo.SavePoints(ctx, "id", 2)
			Expect(err).Should(Equal(internal.ErrDuplicateID))

			points, err := repo.GetPoints(ctx, "id")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(points).Should(Equal(1))
		})
		It("handles concurrent writes and reads", func() {
			const n = 100
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					defer GinkgoRecover()

					id := fmt.Sprintf("id-%d", i)
					Expect(repo.SavePoints(ctx, id, i)).To(Succeed())
					points, err := repo.GetPoints(ctx, id)
					Expect(err).ShouldNot(HaveOccurred())
					Expect(points).Should(Equal(i))
				}(i)
			}
			wg.Wait()

			Expect(repo.Len()).Should(Equal(n))
		})
	})
})
