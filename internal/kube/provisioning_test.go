package kube_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/imamik/kubelift/internal/kube"
	"github.com/imamik/kubelift/internal/manifest"
	"github.com/imamik/kubelift/internal/util/ptr"
)

type mapStore map[string]string

func (m mapStore) Read(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", errors.New("missing " + key)
	}
	return v, nil
}

var _ = Describe("Application provisioning", func() {
	var (
		clientset *fake.Clientset
		client    kube.Client
		app       manifest.Application
	)

	BeforeEach(func() {
		//nolint:staticcheck // SA1019: NewSimpleClientset is sufficient for our testing needs
		clientset = fake.NewSimpleClientset()
		client = kube.NewFromClientset(clientset, kube.WithSecretStore(mapStore{
			"SSL_CERTIFICATE": "CERT",
			"SSL_PRIVATE_KEY": "KEY",
		}))
		app = manifest.Application{
			Name:     "api",
			Image:    "registry.example.com/api",
			Tag:      "1.4.0",
			Port:     8080,
			Replicas: ptr.Int32(3),
			Limits:   manifest.Resources{CPU: "500m", Memory: "256Mi"},
			HealthCheck: &manifest.HealthCheck{
				Path: "/healthz",
				Port: 8080,
			},
			TLS: true,
		}
	})

	Context("when deploying a new application", func() {
		It("creates namespace, deployment, service and a TLS ingress", func() {
			By("ensuring the namespace")
			_, err := client.EnsureNamespace(ctx, "shop")
			Expect(err).NotTo(HaveOccurred())

			By("creating the deployment")
			dep, err := client.CreateDeployment(ctx, "shop", "api", app, app.EnvVars())
			Expect(err).NotTo(HaveOccurred())
			Expect(dep.Spec.Template.Spec.Containers).To(HaveLen(1))
			Expect(dep.Spec.Template.Spec.Containers[0].Image).To(Equal("registry.example.com/api:1.4.0"))

			By("exposing it through a service and ingress")
			_, err = client.CreateService(ctx, "shop", "api", app)
			Expect(err).NotTo(HaveOccurred())
			ing, err := client.CreateIngress(ctx, "shop", "api", app)
			Expect(err).NotTo(HaveOccurred())
			Expect(ing.Spec.TLS).To(HaveLen(1))
			Expect(ing.Spec.TLS[0].SecretName).To(Equal("tls"))

			By("checking the TLS secret holds the store material")
			secret, err := clientset.CoreV1().Secrets("shop").Get(ctx, "tls", metav1.GetOptions{})
			Expect(err).NotTo(HaveOccurred())
			Expect(secret.Data).To(HaveKeyWithValue("tls.crt", []byte("CERT")))
			Expect(secret.Data).To(HaveKeyWithValue("tls.key", []byte("KEY")))
		})

		It("does not recreate an existing namespace", func() {
			for range 3 {
				_, err := client.EnsureNamespace(ctx, "shop")
				Expect(err).NotTo(HaveOccurred())
			}

			creates := 0
			for _, a := range clientset.Actions() {
				if a.GetVerb() == "create" && a.GetResource().Resource == "namespaces" {
					creates++
				}
			}
			Expect(creates).To(Equal(1))
		})
	})

	Context("when tearing an application down", func() {
		BeforeEach(func() {
			_, err := client.CreateDeployment(ctx, "shop", "api", app, nil)
			Expect(err).NotTo(HaveOccurred())
			_, err = client.CreateService(ctx, "shop", "api", app)
			Expect(err).NotTo(HaveOccurred())
		})

		It("removes the deployment, its replica sets and the service", func() {
			var selectors []string
			clientset.PrependReactor("delete-collection", "replicasets", func(a k8stesting.Action) (bool, runtime.Object, error) {
				selectors = append(selectors, a.(k8stesting.DeleteCollectionAction).GetListRestrictions().Labels.String())
				return true, nil, nil
			})

			Expect(client.DeleteDeployment(ctx, "shop", "api")).To(Succeed())
			Expect(client.DeleteReplicaSets(ctx, "shop", "api")).To(Succeed())
			Expect(client.DeleteService(ctx, "shop", "api")).To(Succeed())

			Expect(selectors).To(ConsistOf("application=api"))

			_, found, err := client.GetDeployment(ctx, "shop", "api")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
			_, found, err = client.GetService(ctx, "shop", "api")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Context("when running a batch job", func() {
		It("defaults the restart policy to Never", func() {
			job, err := client.CreateJob(ctx, "batch", "report", manifest.Job{
				Image:   "reporter:2",
				Command: []string{"report", "--daily"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(job.Spec.Template.Spec.RestartPolicy).To(Equal(corev1.RestartPolicyNever))

			jobs, found, err := client.GetJobs(ctx, "batch")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(jobs.Items).To(HaveLen(1))
		})
	})
})
