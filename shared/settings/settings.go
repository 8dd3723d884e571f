package settings

import (
	"context"
	"errors"
	"io/ioutil"
	"sync"

	"github.com/ghodss/yaml"
	log "github.com/sirupsen/logrus"
	v1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/cache"

	"github.com/argoproj-labs/sentry-msteams/pkg"
)

// EmptySecretPath stands for a secret without keys.
const EmptySecretPath = ":empty"

// Source tells where the config map and the secret come from. Paths win over the cluster.
type Source struct {
	ConfigMapPath string
	SecretPath    string
	GetK8SClient  func() (kubernetes.Interface, string, error)
}

func (s Source) Load(ctx context.Context) (*pkg.Config, error) {
	var configMap v1.ConfigMap
	if s.ConfigMapPath == "" {
		client, ns, err := s.GetK8SClient()
		if err != nil {
			return nil, err
		}
		cm, err := client.CoreV1().ConfigMaps(ns).Get(ctx, pkg.ConfigMapName, metav1.GetOptions{})
		if err != nil {
			return nil, err
		}
		configMap = *cm
	} else if err := readYAML(s.ConfigMapPath, &configMap); err != nil {
		return nil, err
	}

	var secret v1.Secret
	switch s.SecretPath {
	case EmptySecretPath:
	case "":
		client, ns, err := s.GetK8SClient()
		if err != nil {
			return nil, err
		}
		sec, err := client.CoreV1().Secrets(ns).Get(ctx, pkg.SecretName, metav1.GetOptions{})
		if apierrors.IsNotFound(err) {
			log.Debugf("secret %s not found, using empty secret", pkg.SecretName)
		} else if err != nil {
			return nil, err
		} else {
			secret = *sec
		}
	default:
		if err := readYAML(s.SecretPath, &secret); err != nil {
			return nil, err
		}
	}
	return pkg.ParseConfig(&configMap, &secret)
}

func readYAML(path string, obj interface{}) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, obj)
}

// WatchConfig calls the callback with the parsed config once the informers are synced and on
// every later change of the config map or the secret. Invalid configs are logged and skipped.
func WatchConfig(ctx context.Context, clientset kubernetes.Interface, namespace string, callback func(cfg pkg.Config) error) error {
	configMapInformer := NewConfigMapInformer(clientset, namespace)
	secretInformer := NewSecretInformer(clientset, namespace)

	var lock sync.Mutex
	reload := func() {
		lock.Lock()
		defer lock.Unlock()

		configMap := &v1.ConfigMap{}
		if obj, exists, err := configMapInformer.GetStore().GetByKey(namespace + "/" + pkg.ConfigMapName); err == nil && exists {
			configMap = obj.(*v1.ConfigMap)
		}
		secret := &v1.Secret{}
		if obj, exists, err := secretInformer.GetStore().GetByKey(namespace + "/" + pkg.SecretName); err == nil && exists {
			secret = obj.(*v1.Secret)
		}
		// informer cache objects are shared and must stay untouched
		cfg, err := pkg.ParseConfig(configMap.DeepCopy(), secret.DeepCopy())
		if err != nil {
			log.Warnf("Failed to parse new settings: %v", err)
			return
		}
		if err := callback(*cfg); err != nil {
			log.Warnf("Failed to apply new settings: %v", err)
		}
	}

	handler := cache.ResourceEventHandlerFuncs{
		AddFunc: func(obj interface{}) {
			reload()
		},
		UpdateFunc: func(oldObj, newObj interface{}) {
			reload()
		},
		DeleteFunc: func(obj interface{}) {
			reload()
		},
	}
	configMapInformer.AddEventHandler(handler)
	secretInformer.AddEventHandler(handler)

	go configMapInformer.Run(ctx.Done())
	go secretInformer.Run(ctx.Done())

	if !cache.WaitForCacheSync(ctx.Done(), configMapInformer.HasSynced, secretInformer.HasSynced) {
		return errors.New("timed out waiting for settings caches to sync")
	}
	reload()
	return nil
}
